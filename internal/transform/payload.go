package transform

// Payload is the exact JSON object posted to the content backend. Keys are
// the backend's lowercase names; the audio category travels under "radio".
// The common keys are always present; the four arrays are always present,
// empty when a category has no records.
type Payload struct {
	Channel           string         `json:"channel"`
	Description       string         `json:"description"`
	Tags              string         `json:"tags"`
	Language          string         `json:"language"`
	Status            string         `json:"status"`
	PublishedDate     string         `json:"publisheddate"`
	ContentExpiryDate string         `json:"contentexpirydate"`
	News              []NewsPayload  `json:"news"`
	Radio             []RadioPayload `json:"radio"`
	Events            []EventPayload `json:"events"`
	Chat              []ChatPayload  `json:"chat"`
}

// Record payloads are sparse: a key appears only when the source field was
// present and non-empty. Numbers and booleans are pointers so that 0 and
// false still serialize when the source carried them.

// NewsPayload is one news record on the wire.
type NewsPayload struct {
	NewsTitle            string `json:"newstitle,omitempty"`
	NewsType             string `json:"newstype,omitempty"`
	NewsThumbnailURL     string `json:"newsthumbnailurl,omitempty"`
	NewsURL              string `json:"newsurl,omitempty"`
	ReadingTime          *int   `json:"readingtimeinminutes,omitempty"`
	NewsIsPremium        *bool  `json:"newsispremium,omitempty"`
	PushNotification     *bool  `json:"pushnotificationenabled,omitempty"`
	PushNotificationText string `json:"pushnotificationtext,omitempty"`
}

// RadioPayload is one audio record on the wire.
type RadioPayload struct {
	AudioPodcastName  string `json:"audiopodcastname,omitempty"`
	AudioPodcastType  string `json:"audiopodcasttype,omitempty"`
	AudioURL          string `json:"audiourl,omitempty"`
	AudioThumbnailURL string `json:"audiothumbnailurl,omitempty"`
	AudioDuration     *int   `json:"audioduration,omitempty"`
	ShowName          string `json:"showname,omitempty"`
	HostName          string `json:"hostname,omitempty"`
	ScheduleBroadcast string `json:"schedulebroadcasttime,omitempty"`
	IsLive            *bool  `json:"islive,omitempty"`
}

// EventPayload is one event record on the wire.
type EventPayload struct {
	EventName       string   `json:"eventname,omitempty"`
	EventStartDate  string   `json:"eventstartdate,omitempty"`
	EventEndDate    string   `json:"eventenddate,omitempty"`
	EventLocation   string   `json:"eventlocation,omitempty"`
	EventVenue      string   `json:"eventvenue,omitempty"`
	EventType       string   `json:"eventtype,omitempty"`
	RegistrationURL string   `json:"registrationurl,omitempty"`
	RegistrationPdf string   `json:"registrationpdf,omitempty"`
	TicketPrice     *float64 `json:"ticketprice,omitempty"`
	MaxAttendees    *int     `json:"maxattendees,omitempty"`
}

// ChatPayload is one chat record on the wire.
type ChatPayload struct {
	DiscussionTopic string `json:"discussiontopic,omitempty"`
	ChatOpenType    string `json:"chatopentype,omitempty"`
	ModerationLevel string `json:"moderationlevel,omitempty"`
}
