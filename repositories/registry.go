package repositories

import (
	"institute-cms/models"

	"gorm.io/gorm"
)

// Registry resolves a content kind to its repository. The set of kinds is
// closed at construction, so an unsupported kind is rejected before any
// query runs.
type Registry interface {
	Resolve(kind models.ContentKind) (ContentRepository, error)
}

type contentRegistry struct {
	repos map[models.ContentKind]ContentRepository
}

// NewContentRegistry wires one repository per publishable kind.
func NewContentRegistry(db *gorm.DB) Registry {
	return &contentRegistry{
		repos: map[models.ContentKind]ContentRepository{
			models.KindNews:    NewNewsRepository(db),
			models.KindProgram: NewProgramRepository(db),
			models.KindEvent:   NewEventRepository(db),
			models.KindPage:    NewPageRepository(db),
			models.KindFAQ:     NewFAQRepository(db),
		},
	}
}

func (r *contentRegistry) Resolve(kind models.ContentKind) (ContentRepository, error) {
	repo, ok := r.repos[kind]
	if !ok {
		return nil, models.ErrInvalidContentType
	}
	return repo, nil
}
