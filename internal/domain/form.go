// Package domain defines the form entities: the common record shared by every
// submission, the four closed category record types and the session aggregate
// that holds them between edits.
package domain

import "fmt"

// Category identifies one of the content sections of the form.
type Category string

const (
	CategoryNews   Category = "news"
	CategoryAudio  Category = "audio"
	CategoryEvents Category = "events"
	CategoryChat   Category = "chat"
)

// Categories lists all categories in display order.
var Categories = []Category{CategoryNews, CategoryAudio, CategoryEvents, CategoryChat}

// IsValidCategory checks if a category is valid.
func IsValidCategory(c Category) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// Record is one user-entered row of a category. Values are carried as strings
// until transformation; an empty string means "not entered". Field resolves a
// value by its catalog name so validation can be driven generically from the
// field descriptors.
type Record interface {
	Category() Category
	Field(name string) string
}

// CommonRecord holds the attributes shared by every submission. Dates are ISO
// yyyy-mm-dd strings.
type CommonRecord struct {
	Channel       string `json:"channel"`
	Description   string `json:"description"`
	Tags          string `json:"tags"`
	Language      string `json:"language"`
	Status        string `json:"status"`
	PublishDate   string `json:"publishDate"`
	ContentExpiry string `json:"contentExpiry"`
}

// Field returns the value of a common field by its catalog name.
func (c CommonRecord) Field(name string) string {
	switch name {
	case "channel":
		return c.Channel
	case "description":
		return c.Description
	case "tags":
		return c.Tags
	case "language":
		return c.Language
	case "status":
		return c.Status
	case "publishDate":
		return c.PublishDate
	case "contentExpiry":
		return c.ContentExpiry
	}
	return ""
}

// NewsRecord is one row of the news section.
type NewsRecord struct {
	NewsTitle            string `json:"newsTitle"`
	NewsType             string `json:"newsType"`
	NewsThumbnailURL     string `json:"newsThumbnailUrl"`
	NewsURL              string `json:"newsUrl"`
	NewsIsPremium        string `json:"newsIsPremium"`
	ReadingTime          string `json:"readingTime"`
	PushNotification     string `json:"pushNotification"`
	PushNotificationText string `json:"pushNotificationText"`
}

func (NewsRecord) Category() Category { return CategoryNews }

func (r NewsRecord) Field(name string) string {
	switch name {
	case "newsTitle":
		return r.NewsTitle
	case "newsType":
		return r.NewsType
	case "newsThumbnailUrl":
		return r.NewsThumbnailURL
	case "newsUrl":
		return r.NewsURL
	case "newsIsPremium":
		return r.NewsIsPremium
	case "readingTime":
		return r.ReadingTime
	case "pushNotification":
		return r.PushNotification
	case "pushNotificationText":
		return r.PushNotificationText
	}
	return ""
}

// AudioRecord is one row of the audio section. The backend emits this
// category under the "radio" wire key.
type AudioRecord struct {
	AudioPodcastName      string `json:"audioPodcastName"`
	AudioType             string `json:"audioType"`
	AudioThumbnailURL     string `json:"audioThumbnailUrl"`
	AudioURL              string `json:"audioUrl"`
	AudioDuration         string `json:"audioDuration"`
	ShowName              string `json:"showName"`
	HostName              string `json:"hostName"`
	ScheduleBroadcastDate string `json:"scheduleBroadcastDate"`
	IsLive                string `json:"isLive"`
}

func (AudioRecord) Category() Category { return CategoryAudio }

func (r AudioRecord) Field(name string) string {
	switch name {
	case "audioPodcastName":
		return r.AudioPodcastName
	case "audioType":
		return r.AudioType
	case "audioThumbnailUrl":
		return r.AudioThumbnailURL
	case "audioUrl":
		return r.AudioURL
	case "audioDuration":
		return r.AudioDuration
	case "showName":
		return r.ShowName
	case "hostName":
		return r.HostName
	case "scheduleBroadcastDate":
		return r.ScheduleBroadcastDate
	case "isLive":
		return r.IsLive
	}
	return ""
}

// EventRecord is one row of the events section.
type EventRecord struct {
	EventName          string `json:"eventName"`
	EventStartDate     string `json:"eventStartDate"`
	EventEndDate       string `json:"eventEndDate"`
	EventLocation      string `json:"eventLocation"`
	EventVenue         string `json:"eventVenue"`
	EventType          string `json:"eventType"`
	RegistrationURL    string `json:"registrationUrl"`
	RegistrationPdfURL string `json:"registrationPdfUrl"`
	TicketPrice        string `json:"ticketPrice"`
	MaxAttendees       string `json:"maxAttendees"`
}

func (EventRecord) Category() Category { return CategoryEvents }

func (r EventRecord) Field(name string) string {
	switch name {
	case "eventName":
		return r.EventName
	case "eventStartDate":
		return r.EventStartDate
	case "eventEndDate":
		return r.EventEndDate
	case "eventLocation":
		return r.EventLocation
	case "eventVenue":
		return r.EventVenue
	case "eventType":
		return r.EventType
	case "registrationUrl":
		return r.RegistrationURL
	case "registrationPdfUrl":
		return r.RegistrationPdfURL
	case "ticketPrice":
		return r.TicketPrice
	case "maxAttendees":
		return r.MaxAttendees
	}
	return ""
}

// ChatRecord is one row of the chat section.
type ChatRecord struct {
	DiscussionTopic     string `json:"discussionTopic"`
	AllowedSubscription string `json:"allowedSubscription"`
	ModerationLevel     string `json:"moderationLevel"`
}

func (ChatRecord) Category() Category { return CategoryChat }

func (r ChatRecord) Field(name string) string {
	switch name {
	case "discussionTopic":
		return r.DiscussionTopic
	case "allowedSubscription":
		return r.AllowedSubscription
	case "moderationLevel":
		return r.ModerationLevel
	}
	return ""
}

// RecordSet holds the per-category record sequences. Order within a sequence
// is insertion order and is preserved through transformation.
type RecordSet struct {
	News   []NewsRecord  `json:"news"`
	Audio  []AudioRecord `json:"audio"`
	Events []EventRecord `json:"events"`
	Chat   []ChatRecord  `json:"chat"`
}

// FormSession is the state of one form-filling session: the common record
// plus the per-category records. All mutations go through the transition
// methods so callers never reach into the slices directly.
type FormSession struct {
	Common  CommonRecord `json:"common"`
	Records RecordSet    `json:"records"`
}

// AddNews appends a news record.
func (s *FormSession) AddNews(r NewsRecord) { s.Records.News = append(s.Records.News, r) }

// AddAudio appends an audio record.
func (s *FormSession) AddAudio(r AudioRecord) { s.Records.Audio = append(s.Records.Audio, r) }

// AddEvent appends an event record.
func (s *FormSession) AddEvent(r EventRecord) { s.Records.Events = append(s.Records.Events, r) }

// AddChat appends a chat record.
func (s *FormSession) AddChat(r ChatRecord) { s.Records.Chat = append(s.Records.Chat, r) }

// UpdateNews replaces the news record at index.
func (s *FormSession) UpdateNews(index int, r NewsRecord) error {
	if index < 0 || index >= len(s.Records.News) {
		return fmt.Errorf("news record index %d out of range", index)
	}
	s.Records.News[index] = r
	return nil
}

// UpdateAudio replaces the audio record at index.
func (s *FormSession) UpdateAudio(index int, r AudioRecord) error {
	if index < 0 || index >= len(s.Records.Audio) {
		return fmt.Errorf("audio record index %d out of range", index)
	}
	s.Records.Audio[index] = r
	return nil
}

// UpdateEvent replaces the event record at index.
func (s *FormSession) UpdateEvent(index int, r EventRecord) error {
	if index < 0 || index >= len(s.Records.Events) {
		return fmt.Errorf("event record index %d out of range", index)
	}
	s.Records.Events[index] = r
	return nil
}

// UpdateChat replaces the chat record at index.
func (s *FormSession) UpdateChat(index int, r ChatRecord) error {
	if index < 0 || index >= len(s.Records.Chat) {
		return fmt.Errorf("chat record index %d out of range", index)
	}
	s.Records.Chat[index] = r
	return nil
}

// DeleteRecord removes the record at index from the given category,
// preserving the order of the remaining records.
func (s *FormSession) DeleteRecord(category Category, index int) error {
	switch category {
	case CategoryNews:
		if index < 0 || index >= len(s.Records.News) {
			return fmt.Errorf("news record index %d out of range", index)
		}
		s.Records.News = append(s.Records.News[:index], s.Records.News[index+1:]...)
	case CategoryAudio:
		if index < 0 || index >= len(s.Records.Audio) {
			return fmt.Errorf("audio record index %d out of range", index)
		}
		s.Records.Audio = append(s.Records.Audio[:index], s.Records.Audio[index+1:]...)
	case CategoryEvents:
		if index < 0 || index >= len(s.Records.Events) {
			return fmt.Errorf("event record index %d out of range", index)
		}
		s.Records.Events = append(s.Records.Events[:index], s.Records.Events[index+1:]...)
	case CategoryChat:
		if index < 0 || index >= len(s.Records.Chat) {
			return fmt.Errorf("chat record index %d out of range", index)
		}
		s.Records.Chat = append(s.Records.Chat[:index], s.Records.Chat[index+1:]...)
	default:
		return fmt.Errorf("unknown category: %s", category)
	}
	return nil
}

// Reset clears the session back to its initial empty state. Called only after
// a confirmed successful submission; failures keep the entered data.
func (s *FormSession) Reset() {
	*s = FormSession{}
}

// RecordCount returns the total number of category records in the session.
func (s *FormSession) RecordCount() int {
	return len(s.Records.News) + len(s.Records.Audio) + len(s.Records.Events) + len(s.Records.Chat)
}
