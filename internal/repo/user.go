package repo

import (
	"StationAdmin/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository: контракт доступа к пользователям.
type UserRepository interface {
	// CreateUser возвращает gorm.ErrDuplicatedKey, если логин уже занят.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetUserByLogin возвращает gorm.ErrRecordNotFound, если логин не найден.
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей. db может быть nil.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if r.db == nil {
		return nil, ErrNoDataSource
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateDuplicate(err)
	}
	return user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	if r.db == nil {
		return nil, ErrNoDataSource
	}
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
