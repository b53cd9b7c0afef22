package okr

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/okrflow/okrflow-lambda/internal/auth"
	"github.com/okrflow/okrflow-lambda/internal/config"
	"github.com/okrflow/okrflow-lambda/internal/team"
	"github.com/okrflow/okrflow-lambda/internal/user"
	util "github.com/okrflow/okrflow-lambda/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrOKRNotFound   = errors.New("okr not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidID     = errors.New("invalid id format")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNoKeyResults  = errors.New("at least one key result is required")
)

const recentOKRLimit = 5

type OKRService interface {
	Create(ctx context.Context, dto *CreateOKRDTO) (*OKRResponse, *ValidationErrors, error)
	List(ctx context.Context, criteria FilterCriteria) ([]*OKRResponse, error)
	Get(ctx context.Context, id string) (*OKRResponse, error)
	Update(ctx context.Context, id string, dto *CreateOKRDTO) (*OKRResponse, *ValidationErrors, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*OKRResponse, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*DashboardStatsResponse, error)
}

type okrService struct {
	repo     OKRRepository
	userRepo user.UserRepository
	teamRepo team.TeamRepository
}

func NewService(repo OKRRepository, userRepo user.UserRepository, teamRepo team.TeamRepository) OKRService {
	return &okrService{
		repo:     repo,
		userRepo: userRepo,
		teamRepo: teamRepo,
	}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Claims carry a malformed user id")
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func parseUUID(log logrus.FieldLogger, id string, entityName string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warnf("Invalid %s ID", entityName)
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

func (s *okrService) Create(ctx context.Context, dto *CreateOKRDTO) (*OKRResponse, *ValidationErrors, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create OKR")
	if err != nil {
		return nil, nil, err
	}

	if len(dto.KeyResults) == 0 {
		return nil, nil, ErrNoKeyResults
	}

	if errs := Validate(dto, util.DateOf(time.Now())); !errs.OK() {
		log.WithField("fields", len(errs.Fields)).Info("Rejected OKR submission")
		return nil, &errs, nil
	}

	o := buildFromDTO(dto)
	o.CreatedBy = userID
	o.OverallProgress = OverallProgress(o.KeyResults)

	if err := s.repo.Create(o); err != nil {
		log.WithError(err).Error("Failed to create OKR")
		return nil, nil, err
	}

	log.WithField("okr_id", o.ID).Info("OKR created successfully")
	return s.toResponse(ctx, o, time.Now()), nil, nil
}

func (s *okrService) List(ctx context.Context, criteria FilterCriteria) ([]*OKRResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list OKRs")
	if err != nil {
		return nil, err
	}

	okrs, err := s.repo.FindAll(criteria)
	if err != nil {
		log.WithError(err).Error("Failed to list OKRs")
		return nil, err
	}

	filtered := ApplyFilters(okrs, criteria, s.viewer(ctx, userID))

	dir := s.directory(ctx)
	now := time.Now()
	responses := make([]*OKRResponse, 0, len(filtered))
	for _, o := range filtered {
		responses = append(responses, toResponse(o, dir, now))
	}
	return responses, nil
}

func (s *okrService) Get(ctx context.Context, id string) (*OKRResponse, error) {
	log := config.WithContext(ctx)
	if _, err := getUserIDFromContext(ctx, log, "fetch OKR"); err != nil {
		return nil, err
	}

	okrID, err := parseUUID(log, id, "okr")
	if err != nil {
		return nil, err
	}

	o, err := s.repo.FindByID(okrID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrOKRNotFound
		}
		log.WithError(err).Error("Failed to fetch OKR")
		return nil, err
	}

	return s.toResponse(ctx, o, time.Now()), nil
}

func (s *okrService) Update(ctx context.Context, id string, dto *CreateOKRDTO) (*OKRResponse, *ValidationErrors, error) {
	log := config.WithContext(ctx)
	if _, err := getUserIDFromContext(ctx, log, "update OKR"); err != nil {
		return nil, nil, err
	}

	okrID, err := parseUUID(log, id, "okr")
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.repo.FindByID(okrID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("okr_id", id).Warn("OKR not found for update")
			return nil, nil, ErrOKRNotFound
		}
		log.WithError(err).Error("Error finding OKR for update")
		return nil, nil, err
	}

	// Removing the last key result is rejected by the editor; an edit must
	// keep at least one.
	if len(dto.KeyResults) == 0 {
		return nil, nil, ErrNoKeyResults
	}

	if errs := Validate(dto, util.DateOf(time.Now())); !errs.OK() {
		log.WithField("okr_id", id).Info("Rejected OKR update")
		return nil, &errs, nil
	}

	updated := buildFromDTO(dto)
	updated.ID = existing.ID
	updated.CreatedBy = existing.CreatedBy
	updated.CreatedAt = existing.CreatedAt
	if dto.Status == "" {
		updated.Status = existing.Status
	}
	updated.OverallProgress = OverallProgress(updated.KeyResults)

	if err := s.repo.Update(updated); err != nil {
		log.WithError(err).Error("Failed to update OKR")
		return nil, nil, err
	}

	log.WithField("okr_id", id).Info("OKR updated successfully")
	return s.toResponse(ctx, updated, time.Now()), nil, nil
}

func (s *okrService) UpdateStatus(ctx context.Context, id string, status Status) (*OKRResponse, error) {
	log := config.WithContext(ctx)
	if _, err := getUserIDFromContext(ctx, log, "update OKR status"); err != nil {
		return nil, err
	}

	okrID, err := parseUUID(log, id, "okr")
	if err != nil {
		return nil, err
	}

	// Transitions are caller-driven; any valid status may replace any other.
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.FindByID(okrID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrOKRNotFound
		}
		log.WithError(err).Error("Error finding OKR for status update")
		return nil, err
	}

	o.Status = status
	if err := s.repo.UpdateStatus(okrID, status, OverallProgress(o.KeyResults)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrOKRNotFound
		}
		log.WithError(err).Error("Failed to update OKR status")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"okr_id": id,
		"status": status,
	}).Info("OKR status updated")
	return s.toResponse(ctx, o, time.Now()), nil
}

func (s *okrService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	if _, err := getUserIDFromContext(ctx, log, "delete OKR"); err != nil {
		return err
	}

	okrID, err := parseUUID(log, id, "okr")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(okrID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("okr_id", id).Warn("OKR not found for deletion")
			return ErrOKRNotFound
		}
		log.WithError(err).Error("Failed to delete OKR")
		return err
	}

	log.WithField("okr_id", id).Info("OKR deleted successfully")
	return nil
}

func (s *okrService) DashboardStats(ctx context.Context) (*DashboardStatsResponse, error) {
	log := config.WithContext(ctx)
	if _, err := getUserIDFromContext(ctx, log, "fetch dashboard stats"); err != nil {
		return nil, err
	}

	okrs, err := s.repo.FindAll(FilterCriteria{})
	if err != nil {
		log.WithError(err).Error("Failed to fetch OKRs for dashboard stats")
		return nil, err
	}

	now := time.Now()
	stats := OKRStats{Total: len(okrs)}
	for _, o := range okrs {
		switch o.Status {
		case StatusCompleted:
			stats.Completed++
		case StatusActive:
			stats.InProgress++
		}
		if IsOverdue(o.Status, o.DueDate, now) {
			stats.Overdue++
		}
	}

	dir := s.directory(ctx)
	recent := make([]*OKRResponse, 0, recentOKRLimit)
	for _, o := range okrs {
		if len(recent) == recentOKRLimit {
			break
		}
		recent = append(recent, toResponse(o, dir, now))
	}

	return &DashboardStatsResponse{Stats: stats, Recent: recent}, nil
}

func (s *okrService) viewer(ctx context.Context, userID uuid.UUID) Viewer {
	log := config.WithContext(ctx)

	v := Viewer{UserID: userID}
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.WithError(err).Warn("Could not load viewer's user record; team filter will match nothing")
		return v
	}
	if u.TeamID != nil {
		v.TeamIDs = append(v.TeamIDs, *u.TeamID)
	}
	return v
}

// directory loads the user and team records used to render assignments.
// Lookups are best-effort: a failed fetch degrades assignments to the
// unassigned sentinel instead of failing the request.
func (s *okrService) directory(ctx context.Context) Directory {
	log := config.WithContext(ctx)

	users, err := s.userRepo.FindAll()
	if err != nil {
		log.WithError(err).Warn("Failed to load user directory")
	}
	teams, err := s.teamRepo.FindAll()
	if err != nil {
		log.WithError(err).Warn("Failed to load team directory")
	}
	return NewDirectory(users, teams)
}

func (s *okrService) toResponse(ctx context.Context, o *OKR, now time.Time) *OKRResponse {
	return toResponse(o, s.directory(ctx), now)
}

func buildFromDTO(dto *CreateOKRDTO) *OKR {
	o := &OKR{
		Title:      dto.Title,
		Objective:  dto.Objective,
		AssignedTo: buildAssignment(dto.AssignedTo),
		Priority:   dto.Priority,
		Status:     dto.Status,
		DueDate:    dto.DueDate,
	}
	if o.Priority == "" {
		o.Priority = PriorityMedium
	}
	if o.Status == "" {
		o.Status = StatusDraft
	}

	o.KeyResults = make([]KeyResult, 0, len(dto.KeyResults))
	for i, kr := range dto.KeyResults {
		o.KeyResults = append(o.KeyResults, KeyResult{
			Description: kr.Description,
			Target:      kr.Target,
			Progress:    int(kr.Progress),
			Position:    i,
		})
	}
	return o
}

// buildAssignment normalizes the raw form selection into the tagged union.
// Only the branch matching the selected kind is consulted; empty or
// malformed ids leave the branch unset.
func buildAssignment(dto AssignedToDTO) Assignment {
	kind := AssignmentKind(dto.Type)
	if !kind.IsValid() {
		kind = AssignmentKindUser
	}

	a := Assignment{Kind: kind}
	switch kind {
	case AssignmentKindUser:
		if id, err := uuid.Parse(dto.User); err == nil {
			a.UserID = &id
		}
	case AssignmentKindTeam:
		if id, err := uuid.Parse(dto.Team); err == nil {
			a.TeamID = &id
		}
	}
	return a
}

func toResponse(o *OKR, dir Directory, now time.Time) *OKRResponse {
	overall := OverallProgress(o.KeyResults)
	statusBadge := StatusBadge(o.Status)
	priorityBadge := PriorityBadge(o.Priority)
	identity := Resolve(o.AssignedTo, dir)

	keyResults := make([]KeyResultResponse, 0, len(o.KeyResults))
	for _, kr := range o.KeyResults {
		keyResults = append(keyResults, KeyResultResponse{
			ID:          kr.ID,
			Description: kr.Description,
			Target:      kr.Target,
			Progress:    kr.Progress,
		})
	}

	return &OKRResponse{
		ID:                o.ID,
		Title:             o.Title,
		Objective:         o.Objective,
		KeyResults:        keyResults,
		AssignedTo:        o.AssignedTo,
		AssignedToDisplay: identity.DisplayName,
		Priority:          o.Priority,
		PriorityLabel:     priorityBadge.Label,
		PrioritySeverity:  priorityBadge.Severity,
		Status:            o.Status,
		StatusLabel:       statusBadge.Label,
		StatusSeverity:    statusBadge.Severity,
		DueDate:           o.DueDate,
		Overdue:           IsOverdue(o.Status, o.DueDate, now),
		OverallProgress:   overall,
		ProgressSeverity:  ProgressSeverity(overall),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
