package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName string     `gorm:"type:text;not null" json:"firstName"`
	LastName  string     `gorm:"type:text;not null" json:"lastName"`
	Email     string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Role      string     `gorm:"type:text;not null;default:'member'" json:"role"`
	TeamID    *uuid.UUID `gorm:"type:uuid;index" json:"teamId,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
