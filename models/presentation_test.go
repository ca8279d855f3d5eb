package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The mapping must be total: every status yields a complete badge, and
// unrecognized input falls back to gray instead of an empty badge.
func TestPresentationForTotality(t *testing.T) {
	for _, status := range AllStatuses() {
		badge := PresentationFor(status)
		assert.NotEmpty(t, badge.ColorClasses, "status %s", status)
		assert.NotEmpty(t, badge.LabelEn, "status %s", status)
		assert.NotEmpty(t, badge.LabelAr, "status %s", status)
		assert.NotEqual(t, "Unknown", badge.LabelEn, "status %s", status)
	}

	fallback := PresentationFor(Status("widget"))
	assert.Equal(t, "Unknown", fallback.LabelEn)
	assert.Contains(t, fallback.ColorClasses, "gray")
}

func TestPresentationForLabels(t *testing.T) {
	assert.Equal(t, "Draft", PresentationFor(StatusDraft).LabelEn)
	assert.Equal(t, "In Review", PresentationFor(StatusReview).LabelEn)
	assert.Equal(t, "Published", PresentationFor(StatusPublished).LabelEn)
	assert.Equal(t, "Archived", PresentationFor(StatusArchived).LabelEn)
}

func TestEventPresentationForTotality(t *testing.T) {
	for _, status := range []EventStatus{EventUpcoming, EventOngoing, EventPast, EventCancelled} {
		badge := EventPresentationFor(status)
		assert.NotEmpty(t, badge.ColorClasses, "event status %s", status)
		assert.NotEmpty(t, badge.LabelEn, "event status %s", status)
		assert.NotEmpty(t, badge.LabelAr, "event status %s", status)
	}

	fallback := EventPresentationFor(EventStatus("someday"))
	assert.Equal(t, "Unknown", fallback.LabelEn)
	assert.Contains(t, fallback.ColorClasses, "gray")
}

func TestNewContentResponseBadges(t *testing.T) {
	news := &News{}
	news.Status = StatusPublished
	resp := NewContentResponse(news)
	assert.Equal(t, "Published", resp.StatusBadge.LabelEn)
	assert.Nil(t, resp.EventStatusBadge)

	event := &Event{EventStatus: EventCancelled}
	event.Status = StatusDraft
	resp = NewContentResponse(event)
	assert.Equal(t, "Draft", resp.StatusBadge.LabelEn)
	if assert.NotNil(t, resp.EventStatusBadge) {
		assert.Equal(t, "Cancelled", resp.EventStatusBadge.LabelEn)
	}
}
