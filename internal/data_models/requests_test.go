package dto

import (
	"encoding/json"
	"testing"
)

func TestCreateTaskRequest_CapturesExtraKeys(t *testing.T) {
	body := `{"title":"Buy milk","priority":"high","color":"blue","tags":["errand"]}`

	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if req.Title != "Buy milk" || req.Priority != "high" {
		t.Errorf("typed fields not bound: %+v", req)
	}
	if req.Extra["color"] != "blue" {
		t.Error("unknown keys should land in Extra")
	}
	if _, ok := req.Extra["title"]; ok {
		t.Error("typed keys must not be duplicated into Extra")
	}
}

func TestCreateTaskRequest_NoExtras(t *testing.T) {
	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"Plain"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if req.Extra != nil {
		t.Errorf("expected nil Extra for a fully-typed body, got %v", req.Extra)
	}
}

func TestUpdateTaskRequest_PresenceDetection(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"completed":false,"note":"later"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if req.Completed == nil || *req.Completed {
		t.Error("an explicit false must be distinguishable from absence")
	}
	if req.Title != nil {
		t.Error("absent fields should stay nil")
	}
	if req.Extra["note"] != "later" {
		t.Error("unknown keys should land in Extra")
	}
}
