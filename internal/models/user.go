package models

import (
	"time"
)

type User struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	StudentID string  `json:"studentId" gorm:"uniqueIndex;not null;size:32"`
	Password  string  `json:"-" gorm:"not null;size:100"`
	FullName  *string `json:"fullName" gorm:"size:100"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the credential-free projection returned by auth and
// profile endpoints.
type PublicUser struct {
	ID        uint      `json:"id"`
	StudentID string    `json:"studentId"`
	FullName  *string   `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		StudentID: u.StudentID,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
