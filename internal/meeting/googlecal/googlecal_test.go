package googlecal

import (
	"testing"

	"google.golang.org/api/calendar/v3"
)

func TestJoinURLPrefersVideoEntryPoint(t *testing.T) {
	event := &calendar.Event{
		HangoutLink: "https://meet.google.com/fallback",
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}
	if got := joinURL(event); got != "https://meet.google.com/abc-defg-hij" {
		t.Fatalf("unexpected join url: %s", got)
	}
}

func TestJoinURLFallsBackToHangoutLink(t *testing.T) {
	event := &calendar.Event{
		HangoutLink: "https://meet.google.com/fallback",
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
			},
		},
	}
	if got := joinURL(event); got != "https://meet.google.com/fallback" {
		t.Fatalf("unexpected join url: %s", got)
	}
}

func TestJoinURLEmptyWithoutConference(t *testing.T) {
	if got := joinURL(&calendar.Event{}); got != "" {
		t.Fatalf("expected empty join url, got %s", got)
	}
	if got := joinURL(nil); got != "" {
		t.Fatalf("expected empty join url for nil event, got %s", got)
	}
}
