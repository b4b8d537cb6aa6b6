package access

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Page is the resolved pagination window for a listing.
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// Paginate resolves raw page/limit query values into a window. Page is at
// least 1, limit is clamped to [1, 100], and anything unparseable falls back
// to the defaults (page 1, limit 10).
func Paginate(pageRaw, limitRaw string) Page {
	page, err := strconv.Atoi(pageRaw)
	if err != nil {
		page = defaultPage
	}
	if page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitRaw)
	if err != nil {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// Pages is the total page count for a result set: ceil(total/limit),
// 0 when there are no rows.
func Pages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
