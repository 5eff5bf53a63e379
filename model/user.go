package model

import (
	"time"
)

type User struct {
	UserId       int       `gorm:"column:user_id;type:integer;autoIncrement;primaryKey;" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:users_username_key;" json:"nombreUsuario"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null;" json:"-"`
	Email        string    `gorm:"column:email;type:varchar(255);" json:"-"`
	Age          int       `gorm:"column:age;type:integer;not null;" json:"edad"`
	RegisteredAt time.Time `gorm:"column:registered_at;not null;default:CURRENT_TIMESTAMP;" json:"fechaRegistro"`
	Active       bool      `gorm:"column:active;not null;default:true;" json:"-"`
}

func (User) TableName() string {
	return "users"
}

//---------------------------------------
//---------------------------------------

type RegisterRequest struct {
	Username string `json:"nombreUsuario"`
	Password string `json:"contrasena"`
	Age      int    `json:"edad"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"nombreUsuario"`
	Password string `json:"contrasena"`
}

// AuthResponse is its own envelope, the web client reads token/usuario
// directly from the top level on register and login.
type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token,omitempty"`
	User    *UserInfo `json:"usuario,omitempty"`
}

type UserInfo struct {
	Id           int       `json:"id"`
	Username     string    `json:"nombreUsuario"`
	Age          int       `json:"edad"`
	RegisteredAt time.Time `json:"fechaRegistro"`
}

func (u *User) Info() *UserInfo {
	return &UserInfo{
		Id:           u.UserId,
		Username:     u.Username,
		Age:          u.Age,
		RegisteredAt: u.RegisteredAt,
	}
}
