package repository

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ListFilter holds the list parameters shared by posts, resources and clubs.
// All set filters are combined with AND.
type ListFilter struct {
	Skip       int
	Limit      int
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// NewListFilter returns a filter with the default page size.
func NewListFilter() ListFilter {
	return ListFilter{Limit: DefaultLimit}
}

// Normalize clamps paging into 0 <= skip and 0 <= limit <= MaxLimit.
func (f ListFilter) Normalize() ListFilter {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// clampPage applies the ListFilter paging rules to plain skip/limit pairs.
func clampPage(skip, limit int) (int, int) {
	f := ListFilter{Skip: skip, Limit: limit}.Normalize()
	return f.Skip, f.Limit
}

// listQuery describes one listable table.
type listQuery struct {
	// SELECT ... FROM ... JOIN ... without WHERE
	base string
	// alias of the listed table inside base
	alias string
	// columns matched by the search term
	searchColumns []string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// buildListQuery renders q filtered, ordered newest first with id as the
// tie-breaker, and paged. Values are always bound, never interpolated.
func buildListQuery(q listQuery, f ListFilter) (string, []any) {
	f = f.Normalize()

	var (
		conds []string
		args  []any
	)
	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("%s.category_id = %s", q.alias, bind(*f.CategoryID)))
	}
	if f.StartDate != nil {
		conds = append(conds, fmt.Sprintf("%s.created_at >= %s", q.alias, bind(*f.StartDate)))
	}
	if f.EndDate != nil {
		conds = append(conds, fmt.Sprintf("%s.created_at <= %s", q.alias, bind(*f.EndDate)))
	}
	if f.Search != "" && len(q.searchColumns) > 0 {
		pattern := bind("%" + escapeLike(f.Search) + "%")
		matches := make([]string, 0, len(q.searchColumns))
		for _, col := range q.searchColumns {
			matches = append(matches, fmt.Sprintf("%s ILIKE %s", col, pattern))
		}
		conds = append(conds, "("+strings.Join(matches, " OR ")+")")
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(q.base))
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	fmt.Fprintf(&sb, " ORDER BY %[1]s.created_at DESC, %[1]s.id DESC", q.alias)
	fmt.Fprintf(&sb, " OFFSET %s LIMIT %s", bind(f.Skip), bind(f.Limit))

	return sb.String(), args
}
