package repository

import (
	"context"
	"errors"
	"time"

	"parley/sources/persistence/entities"
	"parley/sources/platform"
	"parley/sources/tracing"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UsersRepository struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (x *UsersRepository) CreateUser(logger *tracing.Logger, euid int64, uname *string, ufullname *string) (*entities.User, error) {
	defer tracing.ProfilePoint(logger, "Users create user completed", "repository.users.create.user", tracing.UserId, euid)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	user := &entities.User{
		UserID:   euid,
		Username: uname,
		Fullname: ufullname,
		IsActive: platform.BoolPtr(true),
	}

	if err := x.db.WithContext(ctx).Create(user).Error; err != nil {
		logger.E("Failed to create user", tracing.InnerError, err)
		return nil, err
	}

	logger.I("Created user")
	return user, nil
}

func (x *UsersRepository) GetUserByEid(logger *tracing.Logger, euid int64) (*entities.User, error) {
	defer tracing.ProfilePoint(logger, "Users get user by eid completed", "repository.users.get.user.by.eid", tracing.UserId, euid)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var user entities.User
	err := x.db.WithContext(ctx).Where("user_id = ?", euid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.E("Failed to get user", tracing.InnerError, err)
		return nil, err
	}

	return &user, nil
}

// GetOrCreateUser resolves the stored profile for a chat participant,
// registering them on first contact and refreshing a changed username.
func (x *UsersRepository) GetOrCreateUser(logger *tracing.Logger, euid int64, uname *string, ufullname *string) (*entities.User, error) {
	user, err := x.GetUserByEid(logger, euid)
	if errors.Is(err, ErrUserNotFound) {
		return x.CreateUser(logger, euid, uname, ufullname)
	}
	if err != nil {
		return nil, err
	}

	if uname != nil && (user.Username == nil || *user.Username != *uname) {
		ctx, cancel := platform.ContextTimeout(context.Background())
		defer cancel()

		user.Username = uname
		if err := x.db.WithContext(ctx).Model(user).Update("username", uname).Error; err != nil {
			logger.W("Failed to refresh username", tracing.InnerError, err)
		}
	}

	return user, nil
}
