// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read straight from the database through GORM and return
// projections shaped for the API, bypassing the domain aggregates.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
)

// Page is one page of an ordered result set.
//
// Example:
//
//	page.Docs  // records on this page
//	page.Pages // ceil(Total / page size)
//	page.Total // records matching the filter across all pages
type Page[T any] struct {
	Docs  []T
	Pages int
	Total int64
}

func newPage[T any](docs []T, total int64, pagination kernel.Pagination) Page[T] {
	return Page[T]{
		Docs:  docs,
		Pages: pagination.Pages(total),
		Total: total,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in the value,
// with LIKE wildcards in s matched literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
