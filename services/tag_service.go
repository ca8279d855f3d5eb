package services

import (
	"errors"
	"math"
	"time"

	"institute-cms/models"
	"institute-cms/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	// Check if tag already exists
	_, err := s.tagRepo.GetByName(req.Name)
	if err == nil {
		return nil, errors.New("tag already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{
		Name:          req.Name,
		NameAr:        req.NameAr,
		UsageCount:    0,
		TrendingScore: 0,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}

// RecountTagUsage refreshes usage counts from the published content set and
// recomputes the trending score. Called after any change to the published
// set or to tag links; failures are swallowed since the counts are derived
// data that the next recount repairs.
func RecountTagUsage(tagRepo repositories.TagRepository) {
	tagCounts, err := tagRepo.CountPublishedByTag()
	if err != nil {
		return
	}

	allTags, err := tagRepo.GetAll()
	if err != nil || len(allTags) == 0 {
		return
	}

	for i := range allTags {
		if count, exists := tagCounts[allTags[i].ID]; exists {
			allTags[i].UsageCount = count
		} else {
			allTags[i].UsageCount = 0
		}

		// Trending considers both usage count and recency.
		daysSinceCreated := time.Since(allTags[i].CreatedAt).Hours() / 24
		if daysSinceCreated > 0 {
			allTags[i].TrendingScore = float64(allTags[i].UsageCount) / math.Log(daysSinceCreated+1)
		} else {
			allTags[i].TrendingScore = float64(allTags[i].UsageCount)
		}
	}

	tagRepo.BulkUpdate(allTags)
}
