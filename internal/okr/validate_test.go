package okr_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okrflow/okrflow-lambda/internal/okr"
	util "github.com/okrflow/okrflow-lambda/internal/utils"
)

var today = util.NewLocalDate(2026, time.September, 1)

func validDTO() *okr.CreateOKRDTO {
	return &okr.CreateOKRDTO{
		Title:     "Grow the platform",
		Objective: "Increase active usage across all regions",
		KeyResults: []okr.KeyResultDTO{
			{Description: "Ship onboarding revamp", Target: "Launched", Progress: 0},
		},
		DueDate: util.NewLocalDate(2026, time.December, 31),
	}
}

func TestValidate(t *testing.T) {
	t.Run("AcceptsValidSubmission", func(t *testing.T) {
		errs := okr.Validate(validDTO(), today)
		if !errs.OK() {
			t.Fatalf("Expected no errors, got fields=%v keyResults=%v", errs.Fields, errs.KeyResults)
		}
	})

	t.Run("AcceptsDueDateToday", func(t *testing.T) {
		dto := validDTO()
		dto.DueDate = today
		errs := okr.Validate(dto, today)
		if !errs.OK() {
			t.Fatalf("A due date of today should be accepted, got: %v", errs.Fields)
		}
	})

	t.Run("CollectsAllFieldErrors", func(t *testing.T) {
		dto := validDTO()
		dto.Title = "   "
		dto.Objective = ""
		dto.DueDate = util.NewLocalDate(2026, time.August, 31)

		errs := okr.Validate(dto, today)
		if len(errs.Fields) != 3 {
			t.Fatalf("Expected exactly 3 field errors, got %d: %v", len(errs.Fields), errs.Fields)
		}
		if errs.Fields["title"] != "Title is required" {
			t.Errorf("Wrong title error: %q", errs.Fields["title"])
		}
		if errs.Fields["objective"] != "Objective is required" {
			t.Errorf("Wrong objective error: %q", errs.Fields["objective"])
		}
		if errs.Fields["dueDate"] != "Due date cannot be in the past" {
			t.Errorf("Wrong dueDate error: %q", errs.Fields["dueDate"])
		}
		if len(errs.KeyResults) != 0 {
			t.Errorf("Key results should be unflagged, got: %v", errs.KeyResults)
		}
	})

	t.Run("MissingDueDate", func(t *testing.T) {
		dto := validDTO()
		dto.DueDate = util.LocalDate{}

		errs := okr.Validate(dto, today)
		if errs.Fields["dueDate"] != "Due date is required" {
			t.Errorf("Wrong dueDate error: %q", errs.Fields["dueDate"])
		}
	})

	t.Run("FlagsKeyResultByIndex", func(t *testing.T) {
		dto := validDTO()
		dto.KeyResults = []okr.KeyResultDTO{
			{Description: "First"},
			{Description: "  "},
			{Description: "Third"},
		}

		errs := okr.Validate(dto, today)
		if len(errs.KeyResults) != 1 {
			t.Fatalf("Expected exactly 1 key result error, got %d: %v", len(errs.KeyResults), errs.KeyResults)
		}
		if errs.KeyResults[1] != "Description is required" {
			t.Errorf("Wrong error at index 1: %q", errs.KeyResults[1])
		}
		if len(errs.Fields) != 0 {
			t.Errorf("No field errors expected, got: %v", errs.Fields)
		}
	})

	t.Run("RejectsUnknownEnums", func(t *testing.T) {
		dto := validDTO()
		dto.Status = "archived"
		dto.Priority = "urgent"
		dto.AssignedTo.Type = "department"

		errs := okr.Validate(dto, today)
		if errs.Fields["status"] != "Invalid status" {
			t.Errorf("Wrong status error: %q", errs.Fields["status"])
		}
		if errs.Fields["priority"] != "Invalid priority" {
			t.Errorf("Wrong priority error: %q", errs.Fields["priority"])
		}
		if errs.Fields["assignedTo"] != "Invalid assignment type" {
			t.Errorf("Wrong assignedTo error: %q", errs.Fields["assignedTo"])
		}
	})
}

func TestProgressInputCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"Number", `55`, 55},
		{"NumericString", `"55"`, 55},
		{"Float", `66.7`, 66},
		{"NonNumeric", `"abc"`, 0},
		{"EmptyString", `""`, 0},
		{"Null", `null`, 0},
		{"Negative", `-10`, 0},
		{"AboveRange", `150`, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p okr.ProgressInput
			if err := json.Unmarshal([]byte(tc.raw), &p); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tc.raw, err)
			}
			if int(p) != tc.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tc.raw, int(p), tc.want)
			}
		})
	}
}
