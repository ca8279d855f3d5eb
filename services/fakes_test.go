package services

import (
	"time"

	"institute-cms/models"
	"institute-cms/repositories"

	"gorm.io/gorm"
)

// In-memory fakes standing in for the gorm-backed repositories. They mirror
// the storage semantics the services rely on: not-found is
// gorm.ErrRecordNotFound, reads hand out copies, and ApplyTransition only
// matches when the row version is current.

type fakeContentRepo struct {
	kind    models.ContentKind
	records map[uint]models.Publishable
	nextID  uint

	createCalls     int
	saveCalls       int
	transitionCalls int
}

func newFakeContentRepo(kind models.ContentKind) *fakeContentRepo {
	return &fakeContentRepo{kind: kind, records: map[uint]models.Publishable{}}
}

func (f *fakeContentRepo) clone(rec models.Publishable) models.Publishable {
	out, _ := models.NewContent(f.kind)
	*out.Content() = *rec.Content()
	if src, ok := rec.(*models.Event); ok {
		dst := out.(*models.Event)
		dst.EventStatus = src.EventStatus
		dst.StartsAt = src.StartsAt
		dst.EndsAt = src.EndsAt
		dst.LocationAr = src.LocationAr
		dst.LocationEn = src.LocationEn
	}
	if src, ok := rec.(models.Taggable); ok {
		out.(models.Taggable).SetTags(src.TagList())
	}
	return out
}

func (f *fakeContentRepo) Kind() models.ContentKind { return f.kind }

func (f *fakeContentRepo) Create(rec models.Publishable) error {
	f.createCalls++
	f.nextID++
	rec.Content().ID = f.nextID
	if rec.Content().RowVersion == 0 {
		// Mirror the row_version column default (gorm:"default:1").
		rec.Content().RowVersion = 1
	}
	f.records[f.nextID] = f.clone(rec)
	return nil
}

func (f *fakeContentRepo) GetByID(id uint) (models.Publishable, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.clone(rec), nil
}

func (f *fakeContentRepo) GetBySlug(slug string) (models.Publishable, error) {
	for _, rec := range f.records {
		if rec.Content().Slug == slug {
			return f.clone(rec), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContentRepo) List(params models.ContentListParams, publicOnly bool) ([]models.Publishable, int64, error) {
	var out []models.Publishable
	for _, rec := range f.records {
		if publicOnly && rec.Content().Status != models.StatusPublished {
			continue
		}
		out = append(out, f.clone(rec))
	}
	return out, int64(len(out)), nil
}

func (f *fakeContentRepo) Save(rec models.Publishable) error {
	f.saveCalls++
	f.records[rec.Content().ID] = f.clone(rec)
	return nil
}

func (f *fakeContentRepo) ReplaceTags(rec models.Publishable, tags []models.Tag) error {
	if taggable, ok := rec.(models.Taggable); ok {
		taggable.SetTags(tags)
	}
	return nil
}

func (f *fakeContentRepo) ApplyTransition(id uint, rowVersion int64, fields map[string]interface{}) (int64, error) {
	f.transitionCalls++
	rec, ok := f.records[id]
	if !ok {
		return 0, nil
	}
	pub := rec.Content()
	if pub.RowVersion != rowVersion {
		return 0, nil
	}
	if v, ok := fields["status"]; ok {
		pub.Status = v.(models.Status)
	}
	if v, ok := fields["published_at"]; ok {
		if v == nil {
			pub.PublishedAt = nil
		} else {
			ts := v.(time.Time)
			pub.PublishedAt = &ts
		}
	}
	pub.RowVersion = rowVersion + 1
	return 1, nil
}

func (f *fakeContentRepo) Delete(id uint) error {
	delete(f.records, id)
	return nil
}

type fakeRegistry struct {
	repos map[models.ContentKind]repositories.ContentRepository
}

func newFakeRegistry(repos ...repositories.ContentRepository) *fakeRegistry {
	reg := &fakeRegistry{repos: map[models.ContentKind]repositories.ContentRepository{}}
	for _, repo := range repos {
		reg.repos[repo.Kind()] = repo
	}
	return reg
}

func (r *fakeRegistry) Resolve(kind models.ContentKind) (repositories.ContentRepository, error) {
	repo, ok := r.repos[kind]
	if !ok {
		return nil, models.ErrInvalidContentType
	}
	return repo, nil
}

type fakeTagRepo struct {
	tags    map[string]*models.Tag
	nextID  uint
	counts  map[uint]int
	updated []models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*models.Tag{}, counts: map[uint]int{}}
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	f.nextID++
	tag.ID = f.nextID
	f.tags[tag.Name] = tag
	return nil
}

func (f *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	tag, ok := f.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

func (f *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	for _, tag := range f.tags {
		if tag.ID == id {
			return tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) GetAll() ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range f.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (f *fakeTagRepo) BulkUpdate(tags []models.Tag) error {
	f.updated = tags
	return nil
}

func (f *fakeTagRepo) CountPublishedByTag() (map[uint]int, error) {
	return f.counts, nil
}
