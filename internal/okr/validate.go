package okr

import (
	"strings"

	util "github.com/okrflow/okrflow-lambda/internal/utils"
)

// ValidationErrors maps field names to human-readable messages, with key
// result errors keyed by their row index so the caller can point at the
// offending row. All rules are evaluated; nothing short-circuits.
type ValidationErrors struct {
	Fields     map[string]string `json:"fields,omitempty"`
	KeyResults map[int]string    `json:"keyResults,omitempty"`
}

func (e *ValidationErrors) addField(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationErrors) addKeyResult(index int, message string) {
	if e.KeyResults == nil {
		e.KeyResults = make(map[int]string)
	}
	e.KeyResults[index] = message
}

func (e *ValidationErrors) OK() bool {
	return len(e.Fields) == 0 && len(e.KeyResults) == 0
}

// Validate checks a submission against the acceptance rules. today is the
// calendar date the due-date rule is evaluated against; due dates equal to
// today are accepted, stored OKRs are never re-validated against it.
func Validate(dto *CreateOKRDTO, today util.LocalDate) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(dto.Title) == "" {
		errs.addField("title", "Title is required")
	}

	if strings.TrimSpace(dto.Objective) == "" {
		errs.addField("objective", "Objective is required")
	}

	if dto.DueDate.IsZero() {
		errs.addField("dueDate", "Due date is required")
	} else if dto.DueDate.Before(today) {
		errs.addField("dueDate", "Due date cannot be in the past")
	}

	for i, kr := range dto.KeyResults {
		if strings.TrimSpace(kr.Description) == "" {
			errs.addKeyResult(i, "Description is required")
		}
	}

	if dto.Status != "" && !dto.Status.IsValid() {
		errs.addField("status", "Invalid status")
	}

	if dto.Priority != "" && !dto.Priority.IsValid() {
		errs.addField("priority", "Invalid priority")
	}

	if dto.AssignedTo.Type != "" && !AssignmentKind(dto.AssignedTo.Type).IsValid() {
		errs.addField("assignedTo", "Invalid assignment type")
	}

	return errs
}
