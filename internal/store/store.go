package store

import (
	"context"
	"errors"
	"time"

	"ledger_system/internal/domain"

	"gorm.io/gorm"
)

// Store is the data-access layer over users and transactions. Lookups by id
// report absence as a nil record with a nil error; hard failures are reserved
// for constraint violations and backend trouble (see errors.go).
type Store interface {
	// CreateUser inserts a new user. A duplicate username yields ErrConflict.
	CreateUser(ctx context.Context, username string) (*domain.User, error)

	// GetUser returns the user with its transactions, oldest first, or
	// (nil, nil) when the id does not exist.
	GetUser(ctx context.Context, id uint) (*domain.User, error)

	// ListUsers returns all users in insertion order, each with its
	// transactions eagerly loaded, as a fully materialized slice.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUsername renames an existing user and returns it, or (nil, nil)
	// when the id does not exist. It never creates a row.
	UpdateUsername(ctx context.Context, id uint, username string) (*domain.User, error)

	// DeleteUser removes the user's transactions and then the user as one
	// atomic unit, returning the number of user rows removed (0 or 1).
	DeleteUser(ctx context.Context, id uint) (int64, error)

	// AddTransaction records a transaction for an existing user. A nil ts
	// lets the database assign the timestamp. An unknown user yields
	// ErrNotFound.
	AddTransaction(ctx context.Context, userID uint, txType string, amount float64, ts *time.Time) (*domain.Transaction, error)
}

type gormStore struct {
	db *gorm.DB
}

// New returns a Store backed by the given database handle. The handle's
// lifecycle belongs to the caller.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	user := domain.User{Username: username, Transactions: []domain.Transaction{}}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (s *gormStore) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("transactions.id")
		}).
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	if user.Transactions == nil {
		user.Transactions = []domain.Transaction{}
	}
	return &user, nil
}

func (s *gormStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("transactions.id")
		}).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, mapError(err)
	}
	for i := range users {
		if users[i].Transactions == nil {
			users[i].Transactions = []domain.Transaction{}
		}
	}
	return users, nil
}

func (s *gormStore) UpdateUsername(ctx context.Context, id uint, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("username", username).Error; err != nil {
		return nil, mapError(err)
	}
	user.Transactions = []domain.Transaction{}
	return &user, nil
}

func (s *gormStore) DeleteUser(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.Transaction{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		// An integrity violation rolled the whole unit back; report it as
		// zero rows removed rather than propagating.
		if errors.Is(mapError(err), ErrIntegrity) {
			return 0, nil
		}
		return 0, mapError(err)
	}
	return removed, nil
}

func (s *gormStore) AddTransaction(ctx context.Context, userID uint, txType string, amount float64, ts *time.Time) (*domain.Transaction, error) {
	t := domain.Transaction{UserID: userID, Type: txType, Amount: amount}
	if ts != nil {
		t.Timestamp = *ts
	}
	// Existence check and insert share one transaction so they see the same
	// snapshot; the foreign key remains as backstop.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

var _ Store = (*gormStore)(nil)
