package repo

import (
	"StationAdmin/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Login: "john", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	// поиск по логину: найдено
	got, err := r.GetUserByLogin(ctx, "john")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// уникальный логин: вторая вставка даёт gorm.ErrDuplicatedKey
	_, err = r.CreateUser(ctx, &model.User{Login: "john", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// поиск несуществующего: ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByLogin(ctx, "doesnotexist")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUserRepository_NoDataSource(t *testing.T) {
	r := NewUserRepository(nil)

	_, err := r.CreateUser(context.Background(), &model.User{Login: "a", Password: "b"})
	assert.ErrorIs(t, err, ErrNoDataSource)

	_, err = r.GetUserByLogin(context.Background(), "a")
	assert.ErrorIs(t, err, ErrNoDataSource)
}

func TestTranslateDuplicate_PassesOtherErrors(t *testing.T) {
	plain := errors.New("disk I/O error")
	assert.Same(t, plain, translateDuplicate(plain))
	assert.Nil(t, translateDuplicate(nil))
}
