package services

import (
	"time"

	"institute-cms/models"
	"institute-cms/repositories"
)

// WorkflowService owns the publication state machine. Every operation is a
// guarded, versioned single-row update: the transition table rejects
// illegal moves and the row version turns concurrent writers into explicit
// conflicts instead of lost updates.
type WorkflowService interface {
	SubmitForReview(kind string, id uint) (models.Publishable, error)
	Publish(kind string, id uint) (models.Publishable, error)
	Unpublish(kind string, id uint) (models.Publishable, error)
	Archive(kind string, id uint) (models.Publishable, error)
	Restore(kind string, id uint) (models.Publishable, error)
}

type workflowService struct {
	registry repositories.Registry
	tagRepo  repositories.TagRepository
	now      func() time.Time
}

func NewWorkflowService(registry repositories.Registry, tagRepo repositories.TagRepository) WorkflowService {
	return &workflowService{registry: registry, tagRepo: tagRepo, now: time.Now}
}

func (s *workflowService) SubmitForReview(kind string, id uint) (models.Publishable, error) {
	return s.transition(kind, id, models.StatusReview)
}

func (s *workflowService) Publish(kind string, id uint) (models.Publishable, error) {
	return s.transition(kind, id, models.StatusPublished)
}

func (s *workflowService) Unpublish(kind string, id uint) (models.Publishable, error) {
	return s.transition(kind, id, models.StatusDraft)
}

func (s *workflowService) Archive(kind string, id uint) (models.Publishable, error) {
	return s.transition(kind, id, models.StatusArchived)
}

// Restore moves archived content back to draft, the only exit the state
// machine allows from ARCHIVED.
func (s *workflowService) Restore(kind string, id uint) (models.Publishable, error) {
	return s.transition(kind, id, models.StatusDraft)
}

func (s *workflowService) transition(kind string, id uint, target models.Status) (models.Publishable, error) {
	parsed, err := models.ParseContentKind(kind)
	if err != nil {
		return nil, err
	}
	repo, err := s.registry.Resolve(parsed)
	if err != nil {
		return nil, err
	}

	rec, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	pub := rec.Content()

	if err := models.ValidateTransition(pub.Status, target); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"status": target}
	switch {
	case target == models.StatusPublished:
		// Re-publishing refreshes the timestamp.
		fields["published_at"] = s.now()
	case pub.Status == models.StatusPublished:
		fields["published_at"] = nil
	}

	affected, err := repo.ApplyTransition(id, pub.RowVersion, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// The row version moved between our read and the update.
		return nil, models.ErrConflict
	}

	updated, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Tag usage is derived from the published set, which just changed.
	if target == models.StatusPublished || pub.Status == models.StatusPublished {
		RecountTagUsage(s.tagRepo)
	}

	return updated, nil
}
