package okr

import "github.com/google/uuid"

// Special assignedTo filter values understood by ApplyFilters.
const (
	FilterAssignedToMe   = "me"
	FilterAssignedToTeam = "team"
)

// Viewer is the caller a filter request runs on behalf of, used by the "me"
// and "team" assignedTo values.
type Viewer struct {
	UserID  uuid.UUID
	TeamIDs []uuid.UUID
}

// ApplyFilters narrows a collection by the given criteria. Criteria combine
// with AND; an empty criterion matches everything for its dimension. The
// function is pure and idempotent, so it does not matter whether the scan
// already happened in storage or runs here.
func ApplyFilters(okrs []*OKR, criteria FilterCriteria, viewer Viewer) []*OKR {
	filtered := make([]*OKR, 0, len(okrs))
	for _, o := range okrs {
		if matches(o, criteria, viewer) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func matches(o *OKR, criteria FilterCriteria, viewer Viewer) bool {
	if criteria.Status != "" && string(o.Status) != criteria.Status {
		return false
	}
	if criteria.Priority != "" && string(o.Priority) != criteria.Priority {
		return false
	}
	return matchesAssignment(o.AssignedTo, criteria.AssignedTo, viewer)
}

func matchesAssignment(a Assignment, assignedTo string, viewer Viewer) bool {
	switch assignedTo {
	case "":
		return true
	case FilterAssignedToMe:
		return a.Kind == AssignmentKindUser && a.UserID != nil && *a.UserID == viewer.UserID
	case FilterAssignedToTeam:
		if a.Kind != AssignmentKindTeam || a.TeamID == nil {
			return false
		}
		for _, teamID := range viewer.TeamIDs {
			if *a.TeamID == teamID {
				return true
			}
		}
		return false
	default:
		key := a.IdentityKey()
		return key != "" && key == assignedTo
	}
}
