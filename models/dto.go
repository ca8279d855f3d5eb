package models

import "time"

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ContentRequest is the create/update payload shared by every content kind.
// Both halves of each bilingual pair are required at the request boundary;
// the store does not enforce pair completeness. The event-only fields are
// ignored for the other kinds.
type ContentRequest struct {
	TitleAr   string   `json:"title_ar" binding:"required,min=1,max=255"`
	TitleEn   string   `json:"title_en" binding:"required,min=1,max=255"`
	Slug      string   `json:"slug,omitempty"`
	SummaryAr string   `json:"summary_ar"`
	SummaryEn string   `json:"summary_en"`
	BodyAr    string   `json:"body_ar"`
	BodyEn    string   `json:"body_en"`
	Featured  bool     `json:"featured"`
	Tags      []string `json:"tags"`

	// Event only.
	EventStatus string     `json:"event_status,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	LocationAr  string     `json:"location_ar,omitempty"`
	LocationEn  string     `json:"location_en,omitempty"`
}

type ContentListParams struct {
	Status    string `form:"status"`
	Featured  *bool  `form:"featured"`
	AuthorID  uint   `form:"author_id"`
	TagID     uint   `form:"tag_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

type CreateTagRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	NameAr string `json:"name_ar" binding:"max=100"`
}

// ContentResponse wraps a record with the badges the clients render, so the
// admin and the public site present statuses identically.
type ContentResponse struct {
	Item             Publishable         `json:"item"`
	StatusBadge      StatusPresentation  `json:"status_badge"`
	EventStatusBadge *StatusPresentation `json:"event_status_badge,omitempty"`
}

func NewContentResponse(rec Publishable) ContentResponse {
	resp := ContentResponse{
		Item:        rec,
		StatusBadge: PresentationFor(rec.Content().Status),
	}
	if event, ok := rec.(*Event); ok {
		badge := EventPresentationFor(event.EventStatus)
		resp.EventStatusBadge = &badge
	}
	return resp
}
