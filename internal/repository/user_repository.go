package repository

import (
	"movie_tracker/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUsername(username string) (*model.User, error)
	GetUserById(userId int) (*model.User, error)
	UsernameExists(username string) (bool, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

// GetUserByUsername only returns active users, deactivated accounts cannot log in.
func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.
		Model(&model.User{}).
		Where("username = ? AND active = true", username).
		First(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserById(userId int) (*model.User, error) {
	var user model.User
	err := r.db.
		Model(&model.User{}).
		Where("user_id = ?", userId).
		First(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	return count > 0, err
}
