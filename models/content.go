package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ContentKind identifies one of the publishable entity kinds. The set is
// closed: the repository registry is built from it at startup and any other
// string is rejected before a query runs.
type ContentKind string

const (
	KindNews    ContentKind = "news"
	KindProgram ContentKind = "program"
	KindEvent   ContentKind = "event"
	KindPage    ContentKind = "page"
	KindFAQ     ContentKind = "faq"
)

// ContentKinds returns every supported content kind.
func ContentKinds() []ContentKind {
	return []ContentKind{KindNews, KindProgram, KindEvent, KindPage, KindFAQ}
}

// ParseContentKind resolves a path/request segment to a content kind.
func ParseContentKind(value string) (ContentKind, error) {
	switch ContentKind(strings.ToLower(strings.TrimSpace(value))) {
	case KindNews:
		return KindNews, nil
	case KindProgram:
		return KindProgram, nil
	case KindEvent:
		return KindEvent, nil
	case KindPage:
		return KindPage, nil
	case KindFAQ:
		return KindFAQ, nil
	default:
		return "", ErrInvalidContentType
	}
}

// Publication is the shared base embedded by every publishable content
// model: the bilingual field pairs, the publication status and its
// timestamp, and the row version used for optimistic concurrency.
type Publication struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	TitleAr     string         `json:"title_ar" gorm:"not null"`
	TitleEn     string         `json:"title_en" gorm:"not null"`
	SummaryAr   string         `json:"summary_ar"`
	SummaryEn   string         `json:"summary_en"`
	BodyAr      string         `json:"body_ar" gorm:"type:text"`
	BodyEn      string         `json:"body_en" gorm:"type:text"`
	Status      Status         `json:"status" gorm:"default:'DRAFT';index"`
	PublishedAt *time.Time     `json:"published_at"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	RowVersion  int64          `json:"row_version" gorm:"default:1"`
	AuthorID    uint           `json:"author_id" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Publishable is implemented by every content model that carries the
// publication lifecycle.
type Publishable interface {
	Content() *Publication
	Kind() ContentKind
}

// Taggable is the subset of publishable kinds that carry tag links.
type Taggable interface {
	Publishable
	TagList() []Tag
	SetTags(tags []Tag)
}

type News struct {
	Publication
	Tags []Tag `json:"tags" gorm:"many2many:news_tags;"`
}

func (News) TableName() string { return "news" }
func (n *News) Content() *Publication { return &n.Publication }
func (n *News) Kind() ContentKind { return KindNews }
func (n *News) TagList() []Tag { return n.Tags }
func (n *News) SetTags(tags []Tag) { n.Tags = tags }

type Program struct {
	Publication
	Tags []Tag `json:"tags" gorm:"many2many:program_tags;"`
}

func (Program) TableName() string { return "programs" }
func (p *Program) Content() *Publication { return &p.Publication }
func (p *Program) Kind() ContentKind { return KindProgram }
func (p *Program) TagList() []Tag { return p.Tags }
func (p *Program) SetTags(tags []Tag) { p.Tags = tags }

type Event struct {
	Publication
	// EventStatus is independent of the publication lifecycle.
	EventStatus EventStatus `json:"event_status" gorm:"default:'UPCOMING'"`
	StartsAt    *time.Time  `json:"starts_at"`
	EndsAt      *time.Time  `json:"ends_at"`
	LocationAr  string      `json:"location_ar"`
	LocationEn  string      `json:"location_en"`
	Tags        []Tag       `json:"tags" gorm:"many2many:event_tags;"`
}

func (Event) TableName() string { return "events" }
func (e *Event) Content() *Publication { return &e.Publication }
func (e *Event) Kind() ContentKind { return KindEvent }
func (e *Event) TagList() []Tag { return e.Tags }
func (e *Event) SetTags(tags []Tag) { e.Tags = tags }

type Page struct {
	Publication
}

func (Page) TableName() string { return "pages" }
func (p *Page) Content() *Publication { return &p.Publication }
func (p *Page) Kind() ContentKind { return KindPage }

// FAQ stores the question in the title pair and the answer in the body pair.
type FAQ struct {
	Publication
}

func (FAQ) TableName() string { return "faqs" }
func (f *FAQ) Content() *Publication { return &f.Publication }
func (f *FAQ) Kind() ContentKind { return KindFAQ }

// NewContent constructs an empty record of the given kind.
func NewContent(kind ContentKind) (Publishable, error) {
	switch kind {
	case KindNews:
		return &News{}, nil
	case KindProgram:
		return &Program{}, nil
	case KindEvent:
		return &Event{}, nil
	case KindPage:
		return &Page{}, nil
	case KindFAQ:
		return &FAQ{}, nil
	default:
		return nil, ErrInvalidContentType
	}
}
