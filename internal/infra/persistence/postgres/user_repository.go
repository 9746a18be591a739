package postgres

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/repository"
	"optika/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"optika/internal/infra/persistence/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserEntity(&userModel), nil
}

// FindByEmail retrieves a single user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).First(&userModel, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserEntity(&userModel), nil
}

// Create persists a new user entity to the storage.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":    user.Name,
			"phone":   user.Phone,
			"address": user.Address,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserEntity(userModel *model.UserModel) *entity.User {
	return &entity.User{
		ID:        userModel.ID,
		Email:     userModel.Email,
		Name:      userModel.Name,
		Phone:     userModel.Phone,
		Address:   userModel.Address,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
	}
}

func toUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Phone:   user.Phone,
		Address: user.Address,
	}
}
