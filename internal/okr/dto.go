package okr

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	util "github.com/okrflow/okrflow-lambda/internal/utils"
)

// ProgressInput accepts whatever the form sends for a progress value. Numbers
// and numeric strings are used as-is, anything else becomes 0, and the result
// is clamped to [0,100]. This leniency mirrors the submission form, which
// never rejects a progress input.
type ProgressInput int

func (p *ProgressInput) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	if n, err := strconv.Atoi(s); err == nil {
		*p = ProgressInput(clampProgress(n))
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*p = ProgressInput(clampProgress(int(f)))
		return nil
	}

	*p = 0
	return nil
}

func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

type KeyResultDTO struct {
	Description string        `json:"description"`
	Target      string        `json:"target"`
	Progress    ProgressInput `json:"progress"`
}

// AssignedToDTO carries the raw form selection. Empty id strings mean the
// branch is unset, never a valid identifier.
type AssignedToDTO struct {
	Type string `json:"type"`
	User string `json:"user"`
	Team string `json:"team"`
}

// CreateOKRDTO is the submission shape for both create and update; edits go
// through the same validation contract as creation.
type CreateOKRDTO struct {
	Title      string         `json:"title"`
	Objective  string         `json:"objective"`
	KeyResults []KeyResultDTO `json:"keyResults"`
	AssignedTo AssignedToDTO  `json:"assignedTo"`
	Priority   Priority       `json:"priority"`
	Status     Status         `json:"status"`
	DueDate    util.LocalDate `json:"dueDate"`
}

type UpdateStatusDTO struct {
	Status Status `json:"status"`
}

// FilterCriteria are the optional list filters, AND-combined. An empty value
// matches everything for that dimension. AssignedTo understands the special
// values "me" and "team"; anything else is matched as a literal id.
type FilterCriteria struct {
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	AssignedTo string `json:"assignedTo"`
}

type KeyResultResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Target      string    `json:"target"`
	Progress    int       `json:"progress"`
}

type OKRResponse struct {
	ID                uuid.UUID           `json:"id"`
	Title             string              `json:"title"`
	Objective         string              `json:"objective"`
	KeyResults        []KeyResultResponse `json:"keyResults"`
	AssignedTo        Assignment          `json:"assignedTo"`
	AssignedToDisplay string              `json:"assignedToDisplay"`
	Priority          Priority            `json:"priority"`
	PriorityLabel     string              `json:"priorityLabel"`
	PrioritySeverity  string              `json:"prioritySeverity"`
	Status            Status              `json:"status"`
	StatusLabel       string              `json:"statusLabel"`
	StatusSeverity    string              `json:"statusSeverity"`
	DueDate           util.LocalDate      `json:"dueDate"`
	Overdue           bool                `json:"overdue"`
	OverallProgress   int                 `json:"overallProgress"`
	ProgressSeverity  string              `json:"progressSeverity"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type OKRStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Overdue    int `json:"overdue"`
}

type DashboardStatsResponse struct {
	Stats  OKRStats       `json:"stats"`
	Recent []*OKRResponse `json:"recent"`
}
