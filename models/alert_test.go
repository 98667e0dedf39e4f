package models

import (
	"testing"
	"time"
)

func TestParseServiceAlert(t *testing.T) {
	data := map[string]any{
		"subtitle": "Buses replace trains between Chatswood and Hornsby",
		"url":      "https://transportnsw.info/alerts/1234",
		"timestamps": map[string]any{
			"lastModification": "2026-03-01T22:00:00Z",
		},
		"affected": map[string]any{
			"stops": []any{
				map[string]any{"id": "206710", "name": "Chatswood"},
				map[string]any{"id": "207720", "name": "Hornsby"},
			},
			"lines": []any{
				map[string]any{"number": "T1"},
			},
		},
	}

	alert := ParseServiceAlert(data)
	if alert.Subtitle != "Buses replace trains between Chatswood and Hornsby" {
		t.Errorf("Subtitle = %q", alert.Subtitle)
	}
	if alert.LastModification == nil {
		t.Fatal("expected a modification time")
	}
	want := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	if !alert.LastModification.Equal(want) {
		t.Errorf("LastModification = %v, want instant %v", alert.LastModification, want)
	}
	if len(alert.AffectedStops) != 2 || len(alert.AffectedLines) != 1 {
		t.Errorf("affected: %d stops, %d lines", len(alert.AffectedStops), len(alert.AffectedLines))
	}
}

func TestParseServiceAlertMalformedTimestamp(t *testing.T) {
	alert := ParseServiceAlert(map[string]any{
		"subtitle":   "Trackwork",
		"timestamps": map[string]any{"lastModification": "yesterday"},
	})
	if alert.LastModification != nil {
		t.Errorf("malformed timestamp must become nil, got %v", alert.LastModification)
	}
}

func TestParseHint(t *testing.T) {
	data := map[string]any{
		"infoText": "Check timetables before travelling",
		"type":     "general",
	}
	hint := ParseHint(data)
	if hint.Text != "Check timetables before travelling" {
		t.Errorf("Text = %q", hint.Text)
	}
	if hint.Raw["type"] != "general" {
		t.Error("expected the original record to be retained")
	}
}
