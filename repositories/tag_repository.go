package repositories

import (
	"institute-cms/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	BulkUpdate(tags []models.Tag) error
	// CountPublishedByTag counts tag links across the published records of
	// every taggable kind, keyed by tag id.
	CountPublishedByTag() (map[uint]int, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("trending_score desc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) BulkUpdate(tags []models.Tag) error {
	return r.db.Save(&tags).Error
}

func (r *tagRepository) CountPublishedByTag() (map[uint]int, error) {
	var results []struct {
		TagID uint
		Count int
	}

	query := `
		SELECT tag_id, COUNT(*) as count FROM (
			SELECT nt.tag_id FROM news_tags nt
			JOIN news n ON nt.news_id = n.id
			WHERE n.status = 'PUBLISHED' AND n.deleted_at IS NULL
			UNION ALL
			SELECT pt.tag_id FROM program_tags pt
			JOIN programs p ON pt.program_id = p.id
			WHERE p.status = 'PUBLISHED' AND p.deleted_at IS NULL
			UNION ALL
			SELECT et.tag_id FROM event_tags et
			JOIN events e ON et.event_id = e.id
			WHERE e.status = 'PUBLISHED' AND e.deleted_at IS NULL
		) links
		GROUP BY tag_id
	`

	err := r.db.Raw(query).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	for _, result := range results {
		counts[result.TagID] = result.Count
	}

	return counts, nil
}
