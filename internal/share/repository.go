package share

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository persists share link records. The flat JSON file store is the
// default implementation; the GORM one is selected when DATABASE_URL is
// set. Lookups return records regardless of usability; expiry and the
// active flag are the service's concern.
type Repository interface {
	Insert(ctx context.Context, l *ShareLink) error
	GetByID(ctx context.Context, id string) (*ShareLink, error)
	GetByToken(ctx context.Context, token string) (*ShareLink, error)
	List(ctx context.Context) ([]*ShareLink, error)
	Update(ctx context.Context, l *ShareLink) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Insert(ctx context.Context, l *ShareLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *gormRepository) GetByID(ctx context.Context, id string) (*ShareLink, error) {
	var l ShareLink
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gormRepository) GetByToken(ctx context.Context, token string) (*ShareLink, error) {
	var l ShareLink
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gormRepository) List(ctx context.Context) ([]*ShareLink, error) {
	var links []*ShareLink
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&links).Error
	return links, err
}

func (r *gormRepository) Update(ctx context.Context, l *ShareLink) error {
	res := r.db.WithContext(ctx).Model(&ShareLink{}).Where("id = ?", l.ID).Updates(map[string]any{
		"is_active": l.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}
