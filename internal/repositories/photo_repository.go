package repositories

import (
	"context"
	"sync"

	"gorm.io/gorm"
	"monastery/internal/models/db_models"
)

type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo *db_models.Photo) error
	ListPhotos(ctx context.Context) ([]db_models.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) CreatePhoto(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) ListPhotos(ctx context.Context) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

type memoryPhotoRepository struct {
	mu     sync.RWMutex
	photos []db_models.Photo
}

func NewMemoryPhotoRepository() PhotoRepository {
	return &memoryPhotoRepository{}
}

func (r *memoryPhotoRepository) CreatePhoto(ctx context.Context, photo *db_models.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	photo.Stamp()
	r.photos = append(r.photos, *photo)
	return nil
}

func (r *memoryPhotoRepository) ListPhotos(ctx context.Context) ([]db_models.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return newestFirst(r.photos, func(p db_models.Photo) int64 { return p.CreatedAt }), nil
}
