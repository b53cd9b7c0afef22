package okr

import (
	"github.com/google/uuid"
	"github.com/okrflow/okrflow-lambda/internal/team"
	"github.com/okrflow/okrflow-lambda/internal/user"
)

// UnassignedDisplay is the sentinel shown when an OKR has no resolvable
// assignee. Directory lookups are best-effort; a dangling id degrades to this
// sentinel instead of failing.
const UnassignedDisplay = "Unassigned"

// Identity is the renderable form of an assignment. Key stays stable even
// when the directory lookup misses, so filtering by literal id keeps working
// while the display degrades to the sentinel.
type Identity struct {
	Key         string
	DisplayName string
}

// Directory holds the user and team records needed to resolve assignments,
// already fetched by the storage collaborator.
type Directory struct {
	Users map[uuid.UUID]user.User
	Teams map[uuid.UUID]team.Team
}

func NewDirectory(users []user.User, teams []team.Team) Directory {
	dir := Directory{
		Users: make(map[uuid.UUID]user.User, len(users)),
		Teams: make(map[uuid.UUID]team.Team, len(teams)),
	}
	for _, u := range users {
		dir.Users[u.ID] = u
	}
	for _, t := range teams {
		dir.Teams[t.ID] = t
	}
	return dir
}

// Resolve normalizes the user-or-team union into a single identity.
func Resolve(a Assignment, dir Directory) Identity {
	switch a.Kind {
	case AssignmentKindUser:
		if a.UserID == nil {
			return Identity{DisplayName: UnassignedDisplay}
		}
		if u, ok := dir.Users[*a.UserID]; ok {
			return Identity{Key: a.UserID.String(), DisplayName: u.FullName()}
		}
		return Identity{Key: a.UserID.String(), DisplayName: UnassignedDisplay}
	case AssignmentKindTeam:
		if a.TeamID == nil {
			return Identity{DisplayName: UnassignedDisplay}
		}
		if t, ok := dir.Teams[*a.TeamID]; ok {
			return Identity{Key: a.TeamID.String(), DisplayName: t.Name}
		}
		return Identity{Key: a.TeamID.String(), DisplayName: UnassignedDisplay}
	}
	return Identity{DisplayName: UnassignedDisplay}
}
