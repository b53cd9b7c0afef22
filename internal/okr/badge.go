package okr

import (
	"time"

	util "github.com/okrflow/okrflow-lambda/internal/utils"
)

type BadgeInfo struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

const (
	SeverityNeutral = "neutral"
	SeverityPrimary = "primary"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

var statusBadges = map[Status]BadgeInfo{
	StatusDraft:     {Label: "Draft", Severity: SeverityNeutral},
	StatusActive:    {Label: "Active", Severity: SeverityPrimary},
	StatusCompleted: {Label: "Completed", Severity: SeveritySuccess},
	StatusCancelled: {Label: "Cancelled", Severity: SeverityDanger},
}

// StatusBadge maps a stored status to its display badge. Unrecognized values
// fall back to the draft badge.
func StatusBadge(s Status) BadgeInfo {
	if badge, ok := statusBadges[s]; ok {
		return badge
	}
	return statusBadges[StatusDraft]
}

var priorityBadges = map[Priority]BadgeInfo{
	PriorityLow:      {Label: "Low", Severity: SeverityNeutral},
	PriorityMedium:   {Label: "Medium", Severity: SeverityWarning},
	PriorityHigh:     {Label: "High", Severity: SeverityDanger},
	PriorityCritical: {Label: "Critical", Severity: SeverityDanger},
}

func PriorityBadge(p Priority) BadgeInfo {
	if badge, ok := priorityBadges[p]; ok {
		return badge
	}
	return priorityBadges[PriorityMedium]
}

// IsOverdue reports whether an active OKR has slipped past its due date. It
// is a display overlay on top of the status enum, never a fifth status, and
// only active OKRs can be overdue.
func IsOverdue(status Status, dueDate util.LocalDate, now time.Time) bool {
	if status != StatusActive || dueDate.IsZero() {
		return false
	}
	return dueDate.Before(util.DateOf(now))
}

// Progress color bands used by every progress bar in the app.
const (
	progressGoodThreshold    = 80
	progressWarningThreshold = 50
)

func ProgressSeverity(progress int) string {
	switch {
	case progress >= progressGoodThreshold:
		return "good"
	case progress >= progressWarningThreshold:
		return "warning"
	default:
		return "danger"
	}
}
