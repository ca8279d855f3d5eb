package services

import (
	"errors"

	"institute-cms/helper"
	"institute-cms/models"
	"institute-cms/repositories"

	"gorm.io/gorm"
)

// ErrSlugUnderivable is returned when neither the request slug nor the
// English title yields a usable slug.
var ErrSlugUnderivable = errors.New("cannot derive slug from english title")

type ContentService interface {
	Create(kind string, req models.ContentRequest, authorID uint) (models.Publishable, error)
	Get(kind string, id uint) (models.Publishable, error)
	GetPublishedBySlug(kind string, slug string) (models.Publishable, error)
	List(kind string, params models.ContentListParams, publicOnly bool) ([]models.Publishable, int64, error)
	Update(kind string, id uint, req models.ContentRequest, userID uint, role models.UserRole) (models.Publishable, error)
	Delete(kind string, id uint, userID uint, role models.UserRole) error
}

type contentService struct {
	registry repositories.Registry
	tagRepo  repositories.TagRepository
}

func NewContentService(registry repositories.Registry, tagRepo repositories.TagRepository) ContentService {
	return &contentService{registry: registry, tagRepo: tagRepo}
}

func (s *contentService) resolve(kind string) (repositories.ContentRepository, error) {
	parsed, err := models.ParseContentKind(kind)
	if err != nil {
		return nil, err
	}
	return s.registry.Resolve(parsed)
}

func (s *contentService) Create(kind string, req models.ContentRequest, authorID uint) (models.Publishable, error) {
	repo, err := s.resolve(kind)
	if err != nil {
		return nil, err
	}

	rec, err := models.NewContent(repo.Kind())
	if err != nil {
		return nil, err
	}

	pub := rec.Content()
	applyRequest(rec, req)
	pub.AuthorID = authorID
	pub.Status = models.StatusDraft
	pub.RowVersion = 1

	// Slug latch: derive from the English title once, only when the request
	// carries no slug. Uniqueness is the database's unique index.
	source := req.Slug
	if source == "" {
		source = req.TitleEn
	}
	pub.Slug = helper.Slugify(source)
	if pub.Slug == "" {
		return nil, ErrSlugUnderivable
	}

	if taggable, ok := rec.(models.Taggable); ok {
		tags, err := s.processTags(req.Tags)
		if err != nil {
			return nil, err
		}
		taggable.SetTags(tags)
	}

	if err := repo.Create(rec); err != nil {
		return nil, err
	}

	RecountTagUsage(s.tagRepo)

	return repo.GetByID(pub.ID)
}

func (s *contentService) Get(kind string, id uint) (models.Publishable, error) {
	repo, err := s.resolve(kind)
	if err != nil {
		return nil, err
	}
	return repo.GetByID(id)
}

// GetPublishedBySlug is the public read path: anything not published is
// reported as not found.
func (s *contentService) GetPublishedBySlug(kind string, slug string) (models.Publishable, error) {
	repo, err := s.resolve(kind)
	if err != nil {
		return nil, err
	}
	rec, err := repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if rec.Content().Status != models.StatusPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (s *contentService) List(kind string, params models.ContentListParams, publicOnly bool) ([]models.Publishable, int64, error) {
	repo, err := s.resolve(kind)
	if err != nil {
		return nil, 0, err
	}
	return repo.List(params, publicOnly)
}

func (s *contentService) Update(kind string, id uint, req models.ContentRequest, userID uint, role models.UserRole) (models.Publishable, error) {
	repo, err := s.resolve(kind)
	if err != nil {
		return nil, err
	}

	rec, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	pub := rec.Content()
	if pub.AuthorID != userID && !role.CanModerate() {
		return nil, models.ErrUnauthorized
	}

	applyRequest(rec, req)

	// The slug is latched: title edits never overwrite it. An explicit slug
	// in the request is an editorial rename and is honored.
	if req.Slug != "" && req.Slug != pub.Slug {
		slug := helper.Slugify(req.Slug)
		if slug == "" {
			return nil, ErrSlugUnderivable
		}
		pub.Slug = slug
	}

	if taggable, ok := rec.(models.Taggable); ok {
		tags, err := s.processTags(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := repo.ReplaceTags(rec, tags); err != nil {
			return nil, err
		}
		taggable.SetTags(tags)
	}

	if err := repo.Save(rec); err != nil {
		return nil, err
	}

	RecountTagUsage(s.tagRepo)

	return repo.GetByID(id)
}

func (s *contentService) Delete(kind string, id uint, userID uint, role models.UserRole) error {
	repo, err := s.resolve(kind)
	if err != nil {
		return err
	}

	rec, err := repo.GetByID(id)
	if err != nil {
		return err
	}

	if rec.Content().AuthorID != userID && !role.CanModerate() {
		return models.ErrUnauthorized
	}

	if err := repo.Delete(id); err != nil {
		return err
	}

	RecountTagUsage(s.tagRepo)
	return nil
}

// processTags resolves tag names to records, creating the missing ones.
func (s *contentService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}

// applyRequest copies the payload onto the record. Event-only fields apply
// only when the record is an event.
func applyRequest(rec models.Publishable, req models.ContentRequest) {
	pub := rec.Content()
	pub.TitleAr = req.TitleAr
	pub.TitleEn = req.TitleEn
	pub.SummaryAr = req.SummaryAr
	pub.SummaryEn = req.SummaryEn
	pub.BodyAr = req.BodyAr
	pub.BodyEn = req.BodyEn
	pub.Featured = req.Featured

	if event, ok := rec.(*models.Event); ok {
		if status, valid := models.ParseEventStatus(req.EventStatus); valid {
			event.EventStatus = status
		}
		event.StartsAt = req.StartsAt
		event.EndsAt = req.EndsAt
		event.LocationAr = req.LocationAr
		event.LocationEn = req.LocationEn
	}
}
