package okr

import (
	"time"

	"github.com/google/uuid"
	util "github.com/okrflow/okrflow-lambda/internal/utils"
)

// Assignment is the user-or-team target of an OKR. Kind selects the branch;
// only the id matching Kind is ever populated, the other stays nil. A nil id
// on the selected branch means the OKR is unassigned.
type Assignment struct {
	Kind   AssignmentKind `gorm:"column:assigned_kind;type:text" json:"type"`
	UserID *uuid.UUID     `gorm:"column:assigned_user_id;type:uuid" json:"user,omitempty"`
	TeamID *uuid.UUID     `gorm:"column:assigned_team_id;type:uuid" json:"team,omitempty"`
}

// IdentityKey returns the stable identifier of the assigned target, or ""
// when unassigned. It is what filter comparisons run against.
func (a Assignment) IdentityKey() string {
	switch a.Kind {
	case AssignmentKindUser:
		if a.UserID != nil {
			return a.UserID.String()
		}
	case AssignmentKindTeam:
		if a.TeamID != nil {
			return a.TeamID.String()
		}
	}
	return ""
}

type OKR struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title      string         `gorm:"type:text;not null" json:"title"`
	Objective  string         `gorm:"type:text;not null" json:"objective"`
	KeyResults []KeyResult    `gorm:"foreignKey:OKRID;constraint:OnDelete:CASCADE" json:"keyResults"`
	AssignedTo Assignment     `gorm:"embedded" json:"assignedTo"`
	Priority   Priority       `gorm:"type:text;not null;default:'medium'" json:"priority"`
	Status     Status         `gorm:"type:text;not null;default:'draft'" json:"status"`
	DueDate    util.LocalDate `gorm:"type:date" json:"dueDate"`

	// Cache of the key-result rollup for list queries. Recomputed on every
	// write, never trusted from input.
	OverallProgress int `gorm:"not null;default:0" json:"overallProgress"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OKR) TableName() string {
	return "okrs"
}

type KeyResult struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OKRID       uuid.UUID `gorm:"type:uuid;not null;index" json:"okr_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Target      string    `gorm:"type:text" json:"target"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	Position    int       `gorm:"not null" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
