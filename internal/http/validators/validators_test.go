package validators

import (
	"testing"
	"time"

	dto "github.com/Ijadele/task-management/internal/data_models"
	apperrors "github.com/Ijadele/task-management/internal/errors"
)

func TestValidateCreateTaskRequest_TitleRequired(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: ""})
	if err != apperrors.ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestValidateCreateTaskRequest_DueDate(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", DueDate: "not-a-date"})
	if err != apperrors.ErrInvalidDueDate {
		t.Errorf("expected ErrInvalidDueDate, got %v", err)
	}

	due, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", DueDate: "2026-09-01"})
	if err != nil {
		t.Fatalf("plain date should parse: %v", err)
	}
	if due == nil || due.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("unexpected parsed date: %v", due)
	}

	due, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", DueDate: "2026-09-01T12:30:00Z"})
	if err != nil {
		t.Fatalf("RFC 3339 timestamp should parse: %v", err)
	}
	want := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	if due == nil || !due.Equal(want) {
		t.Errorf("unexpected parsed timestamp: %v", due)
	}
}

func TestValidateCreateTaskRequest_Priority(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", Priority: "urgent"})
	if err != apperrors.ErrInvalidPriority {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}

	for _, p := range []string{"low", "medium", "high", ""} {
		if _, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", Priority: p}); err != nil {
			t.Errorf("priority %q should be accepted: %v", p, err)
		}
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	empty := ""
	if _, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: &empty}); err != apperrors.ErrTitleRequired {
		t.Errorf("clearing the title should be rejected, got %v", err)
	}

	bad := "whenever"
	if _, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{DueDate: &bad}); err != apperrors.ErrInvalidDueDate {
		t.Errorf("expected ErrInvalidDueDate, got %v", err)
	}

	// Absent fields are not validated.
	if _, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}); err != nil {
		t.Errorf("empty update should pass validation: %v", err)
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	if err := ValidateRegisterRequest(&dto.RegisterRequest{Email: "", Password: "x"}); err != apperrors.ErrCredentialsRequired {
		t.Errorf("expected ErrCredentialsRequired, got %v", err)
	}
	if err := ValidateRegisterRequest(&dto.RegisterRequest{Email: "a@b.c", Password: ""}); err != apperrors.ErrCredentialsRequired {
		t.Errorf("expected ErrCredentialsRequired, got %v", err)
	}
	if err := ValidateRegisterRequest(&dto.RegisterRequest{Email: "a@b.c", Password: "x", Role: "superuser"}); err != apperrors.ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
	if err := ValidateRegisterRequest(&dto.RegisterRequest{Email: "a@b.c", Password: "x", Role: "admin"}); err != nil {
		t.Errorf("admin role should be accepted: %v", err)
	}
}
