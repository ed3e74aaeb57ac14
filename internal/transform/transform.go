// Package transform maps validated form state onto the backend wire schema:
// camelCase field names become the backend's lowercase names, dates are
// reformatted, Yes/No selects become booleans and the audio category is
// renamed to radio. Transform is pure and total; it never fails.
package transform

import (
	"strconv"
	"strings"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/dates"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
)

// Transform builds the wire payload from the common record and the category
// records. Record order within each category is preserved. Empty source
// fields are omitted from the record payloads entirely; the backend relies on
// key absence, so this sparse encoding must not be changed.
func Transform(common domain.CommonRecord, records domain.RecordSet) Payload {
	payload := Payload{
		Channel:           common.Channel,
		Description:       common.Description,
		Tags:              common.Tags,
		Language:          common.Language,
		Status:            common.Status,
		PublishedDate:     dates.FormatForAPI(common.PublishDate),
		ContentExpiryDate: dates.FormatForAPI(common.ContentExpiry),
		News:              make([]NewsPayload, 0, len(records.News)),
		Radio:             make([]RadioPayload, 0, len(records.Audio)),
		Events:            make([]EventPayload, 0, len(records.Events)),
		Chat:              make([]ChatPayload, 0, len(records.Chat)),
	}

	for _, r := range records.News {
		payload.News = append(payload.News, transformNews(r))
	}
	for _, r := range records.Audio {
		payload.Radio = append(payload.Radio, transformAudio(r))
	}
	for _, r := range records.Events {
		payload.Events = append(payload.Events, transformEvent(r))
	}
	for _, r := range records.Chat {
		payload.Chat = append(payload.Chat, transformChat(r))
	}

	return payload
}

func transformNews(r domain.NewsRecord) NewsPayload {
	return NewsPayload{
		NewsTitle:            r.NewsTitle,
		NewsType:             r.NewsType,
		NewsThumbnailURL:     r.NewsThumbnailURL,
		NewsURL:              r.NewsURL,
		ReadingTime:          parseInt(r.ReadingTime),
		NewsIsPremium:        yesNoToBool(r.NewsIsPremium),
		PushNotification:     yesNoToBool(r.PushNotification),
		PushNotificationText: r.PushNotificationText,
	}
}

func transformAudio(r domain.AudioRecord) RadioPayload {
	return RadioPayload{
		AudioPodcastName:  r.AudioPodcastName,
		AudioPodcastType:  r.AudioType,
		AudioURL:          r.AudioURL,
		AudioThumbnailURL: r.AudioThumbnailURL,
		AudioDuration:     parseInt(r.AudioDuration),
		ShowName:          r.ShowName,
		HostName:          r.HostName,
		ScheduleBroadcast: dates.FormatForAPI(r.ScheduleBroadcastDate),
		IsLive:            yesNoToBool(r.IsLive),
	}
}

func transformEvent(r domain.EventRecord) EventPayload {
	return EventPayload{
		EventName:       r.EventName,
		EventStartDate:  dates.FormatForAPI(r.EventStartDate),
		EventEndDate:    dates.FormatForAPI(r.EventEndDate),
		EventLocation:   r.EventLocation,
		EventVenue:      r.EventVenue,
		EventType:       r.EventType,
		RegistrationURL: r.RegistrationURL,
		RegistrationPdf: r.RegistrationPdfURL,
		TicketPrice:     parseFloat(r.TicketPrice),
		MaxAttendees:    parseInt(r.MaxAttendees),
	}
}

func transformChat(r domain.ChatRecord) ChatPayload {
	return ChatPayload{
		DiscussionTopic: r.DiscussionTopic,
		ChatOpenType:    r.AllowedSubscription,
		ModerationLevel: r.ModerationLevel,
	}
}

// yesNoToBool maps the Yes/No select values to booleans. Any other value,
// including empty, yields nil so the key stays off the wire.
func yesNoToBool(value string) *bool {
	switch value {
	case "Yes":
		b := true
		return &b
	case "No":
		b := false
		return &b
	}
	return nil
}

// parseInt converts free-text numeric input. Empty or unparseable input
// yields nil: the key is omitted rather than sending a garbage number.
func parseInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
