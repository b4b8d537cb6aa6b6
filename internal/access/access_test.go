package access

import (
	"testing"
	"time"

	"github.com/Ijadele/task-management/internal/constants"
)

func TestCanAccess_OwnerAndAdmin(t *testing.T) {
	if !CanAccess("u1", constants.RoleUser, "u1") {
		t.Error("owner should access their own resource")
	}

	if CanAccess("u1", constants.RoleUser, "u2") {
		t.Error("non-admin should not access another user's resource")
	}

	if !CanAccess("anyone", constants.RoleAdmin, "someone-else") {
		t.Error("admin should access any resource")
	}
}

func TestPaginate_Defaults(t *testing.T) {
	p := Paginate("", "")
	if p.Page != 1 || p.Limit != 10 || p.Offset != 0 {
		t.Errorf("expected page=1 limit=10 offset=0, got %+v", p)
	}
}

func TestPaginate_Clamping(t *testing.T) {
	if p := Paginate("0", "10"); p.Page != 1 {
		t.Errorf("page 0 should clamp to 1, got %d", p.Page)
	}

	if p := Paginate("3", "1000"); p.Limit != 100 {
		t.Errorf("limit 1000 should clamp to 100, got %d", p.Limit)
	}

	if p := Paginate("-5", "0"); p.Page != 1 || p.Limit != 1 {
		t.Errorf("expected page=1 limit=1, got page=%d limit=%d", p.Page, p.Limit)
	}

	if p := Paginate("garbage", "also-garbage"); p.Page != 1 || p.Limit != 10 {
		t.Errorf("unparseable input should use defaults, got %+v", p)
	}
}

func TestPaginate_Offset(t *testing.T) {
	p := Paginate("3", "25")
	if p.Offset != 50 {
		t.Errorf("expected offset 50, got %d", p.Offset)
	}
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 1, 100},
	}

	for _, tc := range cases {
		if got := Pages(tc.total, tc.limit); got != tc.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestBuildTaskFilter_OwnerScopedByDefault(t *testing.T) {
	now := time.Now()

	f := BuildTaskFilter("u1", constants.RoleUser, ListQuery{}, now)
	if f.OwnerID != "u1" {
		t.Errorf("expected owner clause for plain user, got %q", f.OwnerID)
	}

	// all=true without the admin role must not widen the scope.
	f = BuildTaskFilter("u1", constants.RoleUser, ListQuery{All: "true"}, now)
	if f.OwnerID != "u1" {
		t.Error("all=true should not bypass owner scoping for non-admins")
	}

	f = BuildTaskFilter("a1", constants.RoleAdmin, ListQuery{All: "true"}, now)
	if f.OwnerID != "" {
		t.Error("admin with all=true should see all tasks")
	}

	// Admin without all=true stays scoped to their own tasks.
	f = BuildTaskFilter("a1", constants.RoleAdmin, ListQuery{}, now)
	if f.OwnerID != "a1" {
		t.Error("admin without all=true should stay owner-scoped")
	}
}

func TestBuildTaskFilter_EqualityClauses(t *testing.T) {
	now := time.Now()
	f := BuildTaskFilter("u1", constants.RoleUser, ListQuery{
		Category:  "work",
		Completed: "true",
		Priority:  "high",
		Q:         "report",
	}, now)

	if f.Category == nil || *f.Category != "work" {
		t.Error("category clause missing")
	}
	if f.Completed == nil || !*f.Completed {
		t.Error("completed clause missing")
	}
	if f.Priority == nil || *f.Priority != "high" {
		t.Error("priority clause missing")
	}
	if f.Search != "report" {
		t.Error("search clause missing")
	}
	if f.DueBefore != nil {
		t.Error("due-before clause should be absent without overdue")
	}
}

func TestBuildTaskFilter_CompletedFalse(t *testing.T) {
	f := BuildTaskFilter("u1", constants.RoleUser, ListQuery{Completed: "false"}, time.Now())
	if f.Completed == nil || *f.Completed {
		t.Error("completed=false should produce a false equality clause")
	}
}

func TestBuildTaskFilter_OverdueOverridesCompleted(t *testing.T) {
	now := time.Now()
	f := BuildTaskFilter("u1", constants.RoleUser, ListQuery{
		Completed: "true",
		Overdue:   "true",
	}, now)

	if f.Completed == nil || *f.Completed {
		t.Error("overdue must force completed=false even when completed=true was supplied")
	}
	if f.DueBefore == nil || !f.DueBefore.Equal(now) {
		t.Error("overdue must pin dueDate < now")
	}
}

func TestSort(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"", "created_at desc"},
		{"-createdAt", "created_at desc"},
		{"createdAt", "created_at asc"},
		{"dueDate", "due_date asc"},
		{"-priority", "priority desc"},
		{"title", "title asc"},
		{"not_a_field", ""},
		{"-owner_id; DROP TABLE tasks", ""},
	}

	for _, tc := range cases {
		if got := Sort(tc.spec); got != tc.want {
			t.Errorf("Sort(%q) = %q, want %q", tc.spec, got, tc.want)
		}
	}
}
