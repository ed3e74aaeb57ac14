package domain

import "testing"

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(c) {
			t.Errorf("IsValidCategory(%q) = false", c)
		}
	}
	if IsValidCategory("radio") {
		t.Error("radio is a wire name, not a category")
	}
	if IsValidCategory("") {
		t.Error("empty category should be invalid")
	}
}

func TestSessionAddAndCount(t *testing.T) {
	session := &FormSession{}

	session.AddNews(NewsRecord{NewsTitle: "a"})
	session.AddNews(NewsRecord{NewsTitle: "b"})
	session.AddAudio(AudioRecord{AudioPodcastName: "c"})
	session.AddEvent(EventRecord{EventName: "d"})
	session.AddChat(ChatRecord{DiscussionTopic: "e"})

	if got := session.RecordCount(); got != 5 {
		t.Errorf("RecordCount() = %d, want 5", got)
	}
	if len(session.Records.News) != 2 {
		t.Errorf("news count = %d, want 2", len(session.Records.News))
	}
}

func TestSessionUpdate(t *testing.T) {
	session := &FormSession{}
	session.AddNews(NewsRecord{NewsTitle: "old"})

	if err := session.UpdateNews(0, NewsRecord{NewsTitle: "new"}); err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}
	if session.Records.News[0].NewsTitle != "new" {
		t.Errorf("news[0].NewsTitle = %q, want %q", session.Records.News[0].NewsTitle, "new")
	}

	if err := session.UpdateNews(1, NewsRecord{}); err == nil {
		t.Error("UpdateNews out of range should fail")
	}
	if err := session.UpdateNews(-1, NewsRecord{}); err == nil {
		t.Error("UpdateNews negative index should fail")
	}
	if err := session.UpdateAudio(0, AudioRecord{}); err == nil {
		t.Error("UpdateAudio on empty category should fail")
	}
}

func TestSessionDeleteRecord(t *testing.T) {
	session := &FormSession{}
	session.AddNews(NewsRecord{NewsTitle: "first"})
	session.AddNews(NewsRecord{NewsTitle: "second"})
	session.AddNews(NewsRecord{NewsTitle: "third"})

	if err := session.DeleteRecord(CategoryNews, 1); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}

	if len(session.Records.News) != 2 {
		t.Fatalf("news count = %d, want 2", len(session.Records.News))
	}
	if session.Records.News[0].NewsTitle != "first" || session.Records.News[1].NewsTitle != "third" {
		t.Errorf("remaining records out of order: %v", session.Records.News)
	}

	if err := session.DeleteRecord(CategoryNews, 5); err == nil {
		t.Error("DeleteRecord out of range should fail")
	}
	if err := session.DeleteRecord("radio", 0); err == nil {
		t.Error("DeleteRecord with unknown category should fail")
	}
}

func TestSessionReset(t *testing.T) {
	session := &FormSession{
		Common: CommonRecord{Channel: "Janam Global", Tags: "news"},
	}
	session.AddNews(NewsRecord{NewsTitle: "headline"})
	session.AddChat(ChatRecord{DiscussionTopic: "topic"})

	session.Reset()

	if session.RecordCount() != 0 {
		t.Errorf("RecordCount after reset = %d, want 0", session.RecordCount())
	}
	if session.Common != (CommonRecord{}) {
		t.Errorf("common record not cleared: %+v", session.Common)
	}
}

func TestRecordFieldLookup(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		field  string
		want   string
	}{
		{name: "news title", record: NewsRecord{NewsTitle: "headline"}, field: "newsTitle", want: "headline"},
		{name: "news thumbnail", record: NewsRecord{NewsThumbnailURL: "https://x"}, field: "newsThumbnailUrl", want: "https://x"},
		{name: "audio url", record: AudioRecord{AudioURL: "https://a"}, field: "audioUrl", want: "https://a"},
		{name: "event registration pdf", record: EventRecord{RegistrationPdfURL: "https://p"}, field: "registrationPdfUrl", want: "https://p"},
		{name: "chat subscription", record: ChatRecord{AllowedSubscription: "All"}, field: "allowedSubscription", want: "All"},
		{name: "unknown field", record: NewsRecord{NewsTitle: "x"}, field: "nope", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Field(tt.field); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestCommonRecordFieldLookup(t *testing.T) {
	common := CommonRecord{
		Channel:       "Sports",
		PublishDate:   "2024-05-05",
		ContentExpiry: "2024-06-01",
	}

	if got := common.Field("channel"); got != "Sports" {
		t.Errorf("Field(channel) = %q", got)
	}
	if got := common.Field("publishDate"); got != "2024-05-05" {
		t.Errorf("Field(publishDate) = %q", got)
	}
	if got := common.Field("contentExpiry"); got != "2024-06-01" {
		t.Errorf("Field(contentExpiry) = %q", got)
	}
	if got := common.Field("missing"); got != "" {
		t.Errorf("Field(missing) = %q, want empty", got)
	}
}
