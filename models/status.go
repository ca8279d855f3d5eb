package models

import (
	"fmt"
	"strings"
)

// Status is the publication lifecycle state shared by every content kind.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusReview    Status = "REVIEW"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// AllStatuses returns every valid publication status.
func AllStatuses() []Status {
	return []Status{StatusDraft, StatusReview, StatusPublished, StatusArchived}
}

// ParseStatus normalizes a status string. The second return value reports
// whether the input named a known status.
func ParseStatus(value string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusDraft:
		return StatusDraft, true
	case StatusReview:
		return StatusReview, true
	case StatusPublished:
		return StatusPublished, true
	case StatusArchived:
		return StatusArchived, true
	default:
		return "", false
	}
}

// allowedTransitions is the publication state machine. Re-entering the
// current state is always permitted (re-publishing refreshes published_at),
// so only cross-state moves are listed here. Archived content must be
// restored to draft before it can move anywhere else.
var allowedTransitions = map[Status]map[Status]struct{}{
	StatusDraft: {
		StatusReview:    {},
		StatusPublished: {},
		StatusArchived:  {},
	},
	StatusReview: {
		StatusDraft:     {},
		StatusPublished: {},
		StatusArchived:  {},
	},
	StatusPublished: {
		StatusDraft:    {},
		StatusReview:   {},
		StatusArchived: {},
	},
	StatusArchived: {
		StatusDraft: {},
	},
}

// IsValidTransition reports whether the lifecycle allows the requested change.
func IsValidTransition(from, to Status) bool {
	if from == to {
		_, known := allowedTransitions[from]
		return known
	}
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// ValidateTransition returns an error when a lifecycle change is not allowed.
func ValidateTransition(from, to Status) error {
	if !IsValidTransition(from, to) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, from, to)
	}
	return nil
}

// EventStatus is a second, independent state dimension carried only by
// events. It does not participate in the publication state machine.
type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventOngoing   EventStatus = "ONGOING"
	EventPast      EventStatus = "PAST"
	EventCancelled EventStatus = "CANCELLED"
)

// ParseEventStatus normalizes an event status string.
func ParseEventStatus(value string) (EventStatus, bool) {
	switch EventStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case EventUpcoming:
		return EventUpcoming, true
	case EventOngoing:
		return EventOngoing, true
	case EventPast:
		return EventPast, true
	case EventCancelled:
		return EventCancelled, true
	default:
		return "", false
	}
}
