package models

import (
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           int      `gorm:"primarykey;autoIncrement:false" json:"id"`
	Username     string   `gorm:"size:50;unique;not null" json:"username"`
	Email        string   `gorm:"size:100;unique;not null" json:"email"`
	RealName     string   `gorm:"size:50" json:"realName"`
	StudentID    string   `gorm:"size:50" json:"studentId"`
	Role         UserRole `gorm:"size:16;not null;default:'user'" json:"role"`
	Avatar       string   `gorm:"size:255" json:"avatar,omitempty"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string {
	return "swjtuctf_user"
}

// SetPassword 使用 bcrypt 哈希密码
func (u *User) SetPassword(password string, cost int) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
