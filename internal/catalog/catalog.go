// Package catalog declares the static field definitions that drive form
// rendering, validation and payload transformation. The catalog is defined at
// process start and never mutated.
package catalog

// FieldKind identifies the input widget a field is rendered with.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindURL      FieldKind = "url"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
)

// FieldDescriptor describes a single form field: its identifier, display
// label, widget kind, whether it is mandatory, select options (select kind
// only) and whether its value must be a well-formed URL.
type FieldDescriptor struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	ValidateURL bool      `json:"validateUrl,omitempty"`
}

// Section groups the fields of one content category.
type Section struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Fields []FieldDescriptor `json:"fields"`
}

var zero = float64(0)

// CommonFields are always visible, independent of category.
var CommonFields = []FieldDescriptor{
	{Name: "channel", Label: "Channel", Kind: KindSelect, Required: true, Options: Channels},
	{Name: "description", Label: "Description", Kind: KindTextarea, Required: true},
	{Name: "tags", Label: "Tags", Kind: KindText, Required: true, Placeholder: "Comma separated tags"},
	{Name: "language", Label: "Language", Kind: KindSelect, Required: true, Options: Languages},
	{Name: "status", Label: "Status", Kind: KindSelect, Required: true, Options: Statuses},
	{Name: "publishDate", Label: "Publish Date", Kind: KindDate, Required: true},
	{Name: "contentExpiry", Label: "Content Expiry", Kind: KindDate, Required: false},
}

// NewsFields describe one news record.
var NewsFields = []FieldDescriptor{
	{Name: "newsTitle", Label: "News Title", Kind: KindText},
	{Name: "newsType", Label: "News Type", Kind: KindSelect, Options: NewsTypes},
	{Name: "newsThumbnailUrl", Label: "Thumbnail Url", Kind: KindURL, ValidateURL: true},
	{Name: "newsUrl", Label: "Url", Kind: KindURL, ValidateURL: true},
	{Name: "newsIsPremium", Label: "Is Premium", Kind: KindSelect, Options: YesNoOptions},
	{Name: "readingTime", Label: "Reading Time (minutes)", Kind: KindNumber, Min: &zero},
	{Name: "pushNotification", Label: "Push Notification", Kind: KindSelect, Options: YesNoOptions},
	{Name: "pushNotificationText", Label: "Push Notification Text", Kind: KindText},
}

// AudioFields describe one audio record. The backend still calls this
// category "radio" on the wire; the rename happens during transformation.
var AudioFields = []FieldDescriptor{
	{Name: "audioPodcastName", Label: "Audio Podcast Name", Kind: KindText},
	{Name: "audioType", Label: "Audio Type", Kind: KindSelect, Options: AudioTypes},
	{Name: "audioThumbnailUrl", Label: "Thumbnail Url", Kind: KindURL, ValidateURL: true},
	{Name: "audioUrl", Label: "Audio URL", Kind: KindURL, ValidateURL: true},
	{Name: "audioDuration", Label: "Duration (minutes)", Kind: KindNumber, Min: &zero},
	{Name: "showName", Label: "Show Name", Kind: KindText},
	{Name: "hostName", Label: "Host Name", Kind: KindText},
	{Name: "scheduleBroadcastDate", Label: "Schedule Broadcast Date", Kind: KindDate},
	{Name: "isLive", Label: "Is Live", Kind: KindSelect, Options: YesNoOptions},
}

// EventFields describe one event record.
var EventFields = []FieldDescriptor{
	{Name: "eventName", Label: "Event Name", Kind: KindText},
	{Name: "eventStartDate", Label: "Event Start Date", Kind: KindDate},
	{Name: "eventEndDate", Label: "Event End Date", Kind: KindDate},
	{Name: "eventLocation", Label: "Event Location", Kind: KindText},
	{Name: "eventVenue", Label: "Event Venue", Kind: KindText},
	{Name: "registrationUrl", Label: "Registration URL", Kind: KindURL, ValidateURL: true},
	{Name: "registrationPdfUrl", Label: "Registration PDF URL", Kind: KindURL, ValidateURL: true},
	{Name: "eventType", Label: "Event Type", Kind: KindSelect, Options: EventTypes},
	{Name: "ticketPrice", Label: "Ticket Price", Kind: KindNumber, Min: &zero},
	{Name: "maxAttendees", Label: "Max Attendees", Kind: KindNumber, Min: &zero},
}

// ChatFields describe one chat record; available for all content types.
var ChatFields = []FieldDescriptor{
	{Name: "discussionTopic", Label: "Discussion Topic", Kind: KindText},
	{Name: "allowedSubscription", Label: "Allowed Subscription", Kind: KindSelect, Options: SubscriptionOptions},
	{Name: "moderationLevel", Label: "Moderation Level", Kind: KindSelect, Options: ModerationLevels},
}

// Sections lists the per-category field sets in display order.
var Sections = []Section{
	{ID: "news", Title: "News Section", Fields: NewsFields},
	{ID: "audio", Title: "Audio Section", Fields: AudioFields},
	{ID: "events", Title: "Event Section", Fields: EventFields},
	{ID: "chat", Title: "Chat Section", Fields: ChatFields},
}

// MandatoryFields are the common field names that must be non-empty before a
// submission is attempted. contentExpiry is deliberately not listed.
var MandatoryFields = []string{
	"channel",
	"description",
	"tags",
	"language",
	"status",
	"publishDate",
}

// FieldsForCategory returns the descriptors for one category ID, or nil when
// the category is unknown.
func FieldsForCategory(id string) []FieldDescriptor {
	for _, s := range Sections {
		if s.ID == id {
			return s.Fields
		}
	}
	return nil
}
