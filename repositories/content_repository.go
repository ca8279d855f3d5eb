package repositories

import (
	"fmt"

	"institute-cms/models"

	"gorm.io/gorm"
)

// ContentRepository is the storage surface shared by every publishable
// content kind. One implementation serves all kinds; the registry decides
// which instance a request is dispatched to.
type ContentRepository interface {
	Kind() models.ContentKind
	Create(rec models.Publishable) error
	GetByID(id uint) (models.Publishable, error)
	GetBySlug(slug string) (models.Publishable, error)
	List(params models.ContentListParams, publicOnly bool) ([]models.Publishable, int64, error)
	Save(rec models.Publishable) error
	ReplaceTags(rec models.Publishable, tags []models.Tag) error
	// ApplyTransition performs the conditional single-statement status
	// update. It reports how many rows matched; zero means the row version
	// moved underneath the caller (or the row is gone).
	ApplyTransition(id uint, rowVersion int64, fields map[string]interface{}) (int64, error)
	Delete(id uint) error
}

// sortColumns whitelists the sortable columns shared by all content tables.
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"published_at": "published_at",
	"title_en":     "title_en",
}

type contentRepository[T any, PT interface {
	*T
	models.Publishable
}] struct {
	db        *gorm.DB
	kind      models.ContentKind
	taggable  bool
	joinTable string // e.g. news_tags; empty for untagged kinds
	joinFK    string // e.g. news_id
}

func NewNewsRepository(db *gorm.DB) ContentRepository {
	return &contentRepository[models.News, *models.News]{
		db: db, kind: models.KindNews, taggable: true, joinTable: "news_tags", joinFK: "news_id",
	}
}

func NewProgramRepository(db *gorm.DB) ContentRepository {
	return &contentRepository[models.Program, *models.Program]{
		db: db, kind: models.KindProgram, taggable: true, joinTable: "program_tags", joinFK: "program_id",
	}
}

func NewEventRepository(db *gorm.DB) ContentRepository {
	return &contentRepository[models.Event, *models.Event]{
		db: db, kind: models.KindEvent, taggable: true, joinTable: "event_tags", joinFK: "event_id",
	}
}

func NewPageRepository(db *gorm.DB) ContentRepository {
	return &contentRepository[models.Page, *models.Page]{db: db, kind: models.KindPage}
}

func NewFAQRepository(db *gorm.DB) ContentRepository {
	return &contentRepository[models.FAQ, *models.FAQ]{db: db, kind: models.KindFAQ}
}

func (r *contentRepository[T, PT]) Kind() models.ContentKind {
	return r.kind
}

func (r *contentRepository[T, PT]) Create(rec models.Publishable) error {
	return r.db.Create(rec).Error
}

func (r *contentRepository[T, PT]) GetByID(id uint) (models.Publishable, error) {
	var rec T
	query := r.db
	if r.taggable {
		query = query.Preload("Tags")
	}
	if err := query.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return PT(&rec), nil
}

func (r *contentRepository[T, PT]) GetBySlug(slug string) (models.Publishable, error) {
	var rec T
	query := r.db
	if r.taggable {
		query = query.Preload("Tags")
	}
	if err := query.Where("slug = ?", slug).First(&rec).Error; err != nil {
		return nil, err
	}
	return PT(&rec), nil
}

func (r *contentRepository[T, PT]) List(params models.ContentListParams, publicOnly bool) ([]models.Publishable, int64, error) {
	var recs []T
	var total int64

	query := r.db.Model(new(T))
	if r.taggable {
		query = query.Preload("Tags")
	}

	if publicOnly {
		query = query.Where("status = ?", models.StatusPublished)
	} else if params.Status != "" {
		if status, ok := models.ParseStatus(params.Status); ok {
			query = query.Where("status = ?", status)
		}
	}

	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.TagID > 0 && r.joinTable != "" {
		query = query.Joins(
			fmt.Sprintf("JOIN %s ON %s.%s = %s.id", r.joinTable, r.joinTable, r.joinFK, tableNameOf[T, PT]()),
		).Where(fmt.Sprintf("%s.tag_id = ?", r.joinTable), params.TagID)
	}

	query.Count(&total)

	sortBy, ok := sortColumns[params.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	sortOrder := "desc"
	if params.SortOrder == "asc" {
		sortOrder = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	if err := query.Offset(offset).Limit(params.Limit).Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	out := make([]models.Publishable, len(recs))
	for i := range recs {
		out[i] = PT(&recs[i])
	}
	return out, total, nil
}

func (r *contentRepository[T, PT]) Save(rec models.Publishable) error {
	return r.db.Save(rec).Error
}

// ReplaceTags swaps the record's tag links inside one transaction so a
// failure cannot leave the record with its links deleted but not recreated.
func (r *contentRepository[T, PT]) ReplaceTags(rec models.Publishable, tags []models.Tag) error {
	taggable, ok := rec.(models.Taggable)
	if !ok {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(rec).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		taggable.SetTags(tags)
		return nil
	})
}

func (r *contentRepository[T, PT]) ApplyTransition(id uint, rowVersion int64, fields map[string]interface{}) (int64, error) {
	fields["row_version"] = rowVersion + 1
	res := r.db.Model(new(T)).
		Where("id = ? AND row_version = ?", id, rowVersion).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *contentRepository[T, PT]) Delete(id uint) error {
	return r.db.Delete(new(T), id).Error
}

// tableNameOf resolves the model's explicit table name for raw join clauses.
func tableNameOf[T any, PT interface {
	*T
	models.Publishable
}]() string {
	type tabler interface{ TableName() string }
	if t, ok := any(PT(new(T))).(tabler); ok {
		return t.TableName()
	}
	return ""
}
