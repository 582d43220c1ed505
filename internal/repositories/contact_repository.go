package repositories

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"
	"monastery/internal/models/db_models"
)

type ContactRepositoryInterface interface {
	CreateMessage(ctx context.Context, message *db_models.ContactMessage) error
	ListMessages(ctx context.Context, page, pageSize int) ([]db_models.ContactMessage, error)
	CountMessages(ctx context.Context) (int64, error)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateMessage(ctx context.Context, message *db_models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *ContactRepository) ListMessages(ctx context.Context, page, pageSize int) ([]db_models.ContactMessage, error) {
	var messages []db_models.ContactMessage
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *ContactRepository) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.ContactMessage{}).Count(&count).Error
	return count, err
}

type MemoryContactRepository struct {
	mu       sync.RWMutex
	messages []db_models.ContactMessage
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

func (r *MemoryContactRepository) CreateMessage(ctx context.Context, message *db_models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.Stamp()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MemoryContactRepository) ListMessages(ctx context.Context, page, pageSize int) ([]db_models.ContactMessage, error) {
	r.mu.RLock()
	sorted := newestFirst(r.messages, func(m db_models.ContactMessage) int64 { return m.CreatedAt })
	r.mu.RUnlock()
	return paginate(sorted, page, pageSize), nil
}

func (r *MemoryContactRepository) CountMessages(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.messages)), nil
}

// newestFirst returns a copy of items ordered by descending timestamp; later
// insertions win ties.
func newestFirst[T any](items []T, ts func(T) int64) []T {
	out := make([]T, len(items))
	for i := range items {
		out[len(items)-1-i] = items[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return ts(out[i]) > ts(out[j]) })
	return out
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if page < 1 || pageSize < 1 || start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
