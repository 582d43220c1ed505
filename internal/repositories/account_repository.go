package repositories

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"
	"monastery/internal/models/db_models"
)

var ErrDuplicate = errors.New("duplicate record")

// RoleAssigner picks the role for a new account given how many accounts
// already exist.
type RoleAssigner func(existing int64) string

type AccountRepository interface {
	// Insert assigns account.Role via assign and stores it atomically with
	// respect to other inserts.
	Insert(ctx context.Context, account *db_models.Account, assign RoleAssigner) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// lockAccounts blocks concurrent inserts until tx ends so the count seen by
// assign stays valid. SHARE ROW EXCLUSIVE conflicts with itself but still
// lets readers through. SQLite writers are already serialised by the single
// pooled connection OpenDatabase configures.
func lockAccounts(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("LOCK TABLE accounts IN SHARE ROW EXCLUSIVE MODE").Error
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account, assign RoleAssigner) error {
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAccounts(tx); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&db_models.Account{}).Count(&count).Error; err != nil {
			return err
		}
		account.Role = assign(count)
		return tx.Create(account).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).Count(&count).Error
	return count, err
}

func (a *accountRepository) List(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

// memoryAccountRepository keeps accounts in process memory. Used for the
// serverless-style deployment and in tests.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []db_models.Account
}

func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{}
}

func (m *memoryAccountRepository) Insert(ctx context.Context, account *db_models.Account, assign RoleAssigner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.Username == account.Username {
			return ErrDuplicate
		}
	}
	account.Role = assign(int64(len(m.accounts)))
	account.Stamp()
	m.accounts = append(m.accounts, *account)
	return nil
}

func (m *memoryAccountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.ID.String() == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryAccountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.Username == username {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryAccountRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.accounts)), nil
}

func (m *memoryAccountRepository) List(ctx context.Context) ([]db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]db_models.Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}
