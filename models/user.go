package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/utils"
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin    UserRole = "A"
	RoleOperator UserRole = "O"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Username  string    `gorm:"size:100;not null;unique" json:"username" binding:"required"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Password  string    `gorm:"size:255;not null" json:"password"`
	IsActive  *bool     `gorm:"not null" json:"is_active"`
	Role      UserRole  `gorm:"type:enum('A', 'O');default:O" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (result *User) PrepareGive() {
	result.Password = ""
}

type LoginInfo struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func Login(ctx context.Context, username string, password string) (*LoginInfo, error) {
	db := config.GetDB()
	var result LoginInfo

	user := User{}
	err := db.WithContext(ctx).Model(&User{}).
		Where("username = ?", strings.TrimSpace(username)).
		Take(&user).Error
	if err != nil {
		return &result, errors.New("usuário ou senha inválidos")
	}

	err = utils.ComparePassword(user.Password, password)
	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return &result, errors.New("usuário ou senha inválidos")
	} else if err != nil {
		return &result, err
	}

	if user.IsActive == nil || !*user.IsActive {
		return &result, errors.New("usuário desativado")
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role))
	if err != nil {
		return &result, err
	}

	result.Token = token
	result.Name = user.Name
	result.Role = string(user.Role)
	return &result, nil
}

// GetUser fetches one user by id with the password blanked.
func GetUser(ctx context.Context, id int) (*User, error) {
	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).Take(&user, id).Error; err != nil {
		return nil, err
	}
	user.PrepareGive()
	return &user, nil
}
