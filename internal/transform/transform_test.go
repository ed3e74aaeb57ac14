package transform

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/domain"
)

func marshalRecord(t *testing.T, v interface{}) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return keys
}

func TestTransformCommonFields(t *testing.T) {
	common := domain.CommonRecord{
		Channel:       "Janam Global",
		Description:   "Daily digest",
		Tags:          "news,daily",
		Language:      "Tamil",
		Status:        "Draft",
		PublishDate:   "2024-05-05",
		ContentExpiry: "2024-06-01",
	}

	payload := Transform(common, domain.RecordSet{})

	if payload.Channel != "Janam Global" {
		t.Errorf("Channel = %q", payload.Channel)
	}
	if payload.PublishedDate != "05-05-2024 00:00:00" {
		t.Errorf("PublishedDate = %q, want %q", payload.PublishedDate, "05-05-2024 00:00:00")
	}
	if payload.ContentExpiryDate != "01-06-2024 00:00:00" {
		t.Errorf("ContentExpiryDate = %q", payload.ContentExpiryDate)
	}
}

func TestTransformEmptyCategoriesSerializeAsEmptyArrays(t *testing.T) {
	payload := Transform(domain.CommonRecord{}, domain.RecordSet{})

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)

	for _, key := range []string{`"news":[]`, `"radio":[]`, `"events":[]`, `"chat":[]`} {
		if !strings.Contains(body, key) {
			t.Errorf("payload %s missing %s", body, key)
		}
	}
	if strings.Contains(body, "null") {
		t.Errorf("payload must not contain null arrays: %s", body)
	}
}

func TestTransformNewsSparseEncoding(t *testing.T) {
	records := domain.RecordSet{
		News: []domain.NewsRecord{{NewsTitle: "Breaking News"}},
	}

	payload := Transform(domain.CommonRecord{}, records)
	keys := marshalRecord(t, payload.News[0])

	if len(keys) != 1 {
		t.Fatalf("got keys %v, want only newstitle", keys)
	}
	if string(keys["newstitle"]) != `"Breaking News"` {
		t.Errorf("newstitle = %s", keys["newstitle"])
	}
}

func TestTransformNewsFullRecord(t *testing.T) {
	records := domain.RecordSet{
		News: []domain.NewsRecord{{
			NewsTitle:            "Headline",
			NewsType:             "Breaking News",
			NewsThumbnailURL:     "https://cdn.example.com/t.jpg",
			NewsURL:              "https://example.com/story",
			NewsIsPremium:        "Yes",
			ReadingTime:          "5",
			PushNotification:     "No",
			PushNotificationText: "Read now",
		}},
	}

	payload := Transform(domain.CommonRecord{}, records)
	keys := marshalRecord(t, payload.News[0])

	want := map[string]string{
		"newstitle":               `"Headline"`,
		"newstype":                `"Breaking News"`,
		"newsthumbnailurl":        `"https://cdn.example.com/t.jpg"`,
		"newsurl":                 `"https://example.com/story"`,
		"newsispremium":           `true`,
		"readingtimeinminutes":    `5`,
		"pushnotificationenabled": `false`,
		"pushnotificationtext":    `"Read now"`,
	}
	if len(keys) != len(want) {
		t.Errorf("got %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for key, value := range want {
		if string(keys[key]) != value {
			t.Errorf("%s = %s, want %s", key, keys[key], value)
		}
	}
}

func TestTransformAudioBecomesRadio(t *testing.T) {
	records := domain.RecordSet{
		Audio: []domain.AudioRecord{{
			AudioPodcastName:      "Morning Show",
			AudioType:             "Podcast",
			AudioURL:              "https://example.com/a.mp3",
			AudioDuration:         "30",
			ScheduleBroadcastDate: "2024-07-01",
			IsLive:                "Yes",
		}},
	}

	payload := Transform(domain.CommonRecord{}, records)

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"radio":[{`) {
		t.Errorf("audio records must serialize under radio: %s", body)
	}
	if strings.Contains(body, `"audio"`) {
		t.Errorf("payload must not carry an audio key: %s", body)
	}

	keys := marshalRecord(t, payload.Radio[0])
	if string(keys["audiopodcastname"]) != `"Morning Show"` {
		t.Errorf("audiopodcastname = %s", keys["audiopodcastname"])
	}
	if string(keys["audiopodcasttype"]) != `"Podcast"` {
		t.Errorf("audiopodcasttype = %s", keys["audiopodcasttype"])
	}
	if string(keys["schedulebroadcasttime"]) != `"01-07-2024 00:00:00"` {
		t.Errorf("schedulebroadcasttime = %s", keys["schedulebroadcasttime"])
	}
	if string(keys["islive"]) != `true` {
		t.Errorf("islive = %s", keys["islive"])
	}
	if string(keys["audioduration"]) != `30` {
		t.Errorf("audioduration = %s", keys["audioduration"])
	}
}

func TestTransformEvents(t *testing.T) {
	records := domain.RecordSet{
		Events: []domain.EventRecord{{
			EventName:          "Conference",
			EventStartDate:     "2024-09-10",
			EventEndDate:       "2024-09-12",
			EventType:          "paid",
			RegistrationURL:    "https://example.com/register",
			RegistrationPdfURL: "https://example.com/r.pdf",
			TicketPrice:        "49.99",
			MaxAttendees:       "200",
		}},
	}

	payload := Transform(domain.CommonRecord{}, records)
	keys := marshalRecord(t, payload.Events[0])

	if string(keys["eventstartdate"]) != `"10-09-2024 00:00:00"` {
		t.Errorf("eventstartdate = %s", keys["eventstartdate"])
	}
	if string(keys["eventenddate"]) != `"12-09-2024 00:00:00"` {
		t.Errorf("eventenddate = %s", keys["eventenddate"])
	}
	if string(keys["registrationpdf"]) != `"https://example.com/r.pdf"` {
		t.Errorf("registrationpdf = %s", keys["registrationpdf"])
	}
	if string(keys["ticketprice"]) != `49.99` {
		t.Errorf("ticketprice = %s", keys["ticketprice"])
	}
	if string(keys["maxattendees"]) != `200` {
		t.Errorf("maxattendees = %s", keys["maxattendees"])
	}
}

func TestTransformChat(t *testing.T) {
	records := domain.RecordSet{
		Chat: []domain.ChatRecord{{
			DiscussionTopic:     "Budget 2024",
			AllowedSubscription: "Premium",
			ModerationLevel:     "moderated",
		}},
	}

	payload := Transform(domain.CommonRecord{}, records)
	keys := marshalRecord(t, payload.Chat[0])

	want := map[string]string{
		"discussiontopic": `"Budget 2024"`,
		"chatopentype":    `"Premium"`,
		"moderationlevel": `"moderated"`,
	}
	for key, value := range want {
		if string(keys[key]) != value {
			t.Errorf("%s = %s, want %s", key, keys[key], value)
		}
	}
}

func TestTransformPreservesRecordOrder(t *testing.T) {
	records := domain.RecordSet{
		News: []domain.NewsRecord{
			{NewsTitle: "first"},
			{NewsTitle: "second"},
			{NewsTitle: "third"},
		},
	}

	payload := Transform(domain.CommonRecord{}, records)

	if len(payload.News) != 3 {
		t.Fatalf("got %d news payloads, want 3", len(payload.News))
	}
	for i, want := range []string{"first", "second", "third"} {
		if payload.News[i].NewsTitle != want {
			t.Errorf("news[%d].NewsTitle = %q, want %q", i, payload.News[i].NewsTitle, want)
		}
	}
}

func TestYesNoToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "yes", value: "Yes", want: "true"},
		{name: "no", value: "No", want: "false"},
		{name: "empty", value: "", want: "nil"},
		{name: "other", value: "maybe", want: "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := yesNoToBool(tt.value)
			switch tt.want {
			case "nil":
				if got != nil {
					t.Errorf("yesNoToBool(%q) = %v, want nil", tt.value, *got)
				}
			case "true":
				if got == nil || !*got {
					t.Errorf("yesNoToBool(%q) = %v, want true", tt.value, got)
				}
			case "false":
				if got == nil || *got {
					t.Errorf("yesNoToBool(%q) = %v, want false", tt.value, got)
				}
			}
		})
	}
}

func TestParseIntAndFloat(t *testing.T) {
	if got := parseInt("5"); got == nil || *got != 5 {
		t.Errorf("parseInt(\"5\") = %v", got)
	}
	if got := parseInt("0"); got == nil || *got != 0 {
		t.Errorf("parseInt(\"0\") = %v, zero must stay on the wire", got)
	}
	if got := parseInt(" 7 "); got == nil || *got != 7 {
		t.Errorf("parseInt with spaces = %v", got)
	}
	if got := parseInt(""); got != nil {
		t.Errorf("parseInt(\"\") = %v, want nil", *got)
	}
	if got := parseInt("abc"); got != nil {
		t.Errorf("parseInt(\"abc\") = %v, want nil", *got)
	}
	if got := parseFloat("49.99"); got == nil || *got != 49.99 {
		t.Errorf("parseFloat(\"49.99\") = %v", got)
	}
	if got := parseFloat("free"); got != nil {
		t.Errorf("parseFloat(\"free\") = %v, want nil", *got)
	}
}

func TestTransformZeroValuesStaySparse(t *testing.T) {
	// "0" and "No" came from the user, so 0 and false must serialize; a blank
	// field must not.
	records := domain.RecordSet{
		News: []domain.NewsRecord{{ReadingTime: "0", NewsIsPremium: "No"}},
	}

	payload := Transform(domain.CommonRecord{}, records)
	keys := marshalRecord(t, payload.News[0])

	if string(keys["readingtimeinminutes"]) != `0` {
		t.Errorf("readingtimeinminutes = %s, want 0", keys["readingtimeinminutes"])
	}
	if string(keys["newsispremium"]) != `false` {
		t.Errorf("newsispremium = %s, want false", keys["newsispremium"])
	}
	if _, ok := keys["pushnotificationenabled"]; ok {
		t.Errorf("blank pushNotification must not serialize: %v", keys)
	}
}
