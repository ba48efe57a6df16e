package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmalik/notekeep/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestNewPageRequest_defaults(t *testing.T) {
	d := domain.ListDefaults{Page: 0, Limit: 10}

	p := domain.NewPageRequest(nil, nil, d)

	require.Equal(t, 0, p.Page)
	require.Equal(t, 10, p.Limit)
}

func TestNewPageRequest_overrides(t *testing.T) {
	d := domain.ListDefaults{Page: 0, Limit: 10}

	p := domain.NewPageRequest(intPtr(3), intPtr(25), d)

	require.Equal(t, 3, p.Page)
	require.Equal(t, 25, p.Limit)
}

// TestNewPageRequest_keepsOutOfRangeValues verifies that resolution does not
// clamp; range checking is the service's job so bad values become errors,
// not silently corrected pages.
func TestNewPageRequest_keepsOutOfRangeValues(t *testing.T) {
	d := domain.ListDefaults{Page: 0, Limit: 10}

	p := domain.NewPageRequest(intPtr(-1), intPtr(500), d)

	require.Equal(t, -1, p.Page)
	require.Equal(t, 500, p.Limit)
}

func TestPageRequest_Skip(t *testing.T) {
	assert.Equal(t, 0, domain.PageRequest{Page: 0, Limit: 10}.Skip())
	assert.Equal(t, 20, domain.PageRequest{Page: 2, Limit: 10}.Skip())
	assert.Equal(t, 0, domain.PageRequest{Page: 5, Limit: 0}.Skip())
}

// TestNewPagination_firstPage mirrors the canonical case: 25 notes with
// limit 10 means three pages, and page 0 has a next page but no previous.
func TestNewPagination_firstPage(t *testing.T) {
	meta := domain.NewPagination(domain.PageRequest{Page: 0, Limit: 10}, 25)

	assert.Equal(t, 0, meta.CurrentPage)
	assert.Equal(t, 10, meta.Limit)
	assert.EqualValues(t, 25, meta.TotalNotes)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}

// TestNewPagination_lastPage: page 2 of 25/10 is the short final page.
func TestNewPagination_lastPage(t *testing.T) {
	meta := domain.NewPagination(domain.PageRequest{Page: 2, Limit: 10}, 25)

	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

// TestNewPagination_exactMultiple: a total that divides evenly must not
// produce a phantom extra page.
func TestNewPagination_exactMultiple(t *testing.T) {
	meta := domain.NewPagination(domain.PageRequest{Page: 1, Limit: 10}, 20)

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

// TestNewPagination_zeroLimit: limit 0 must not divide by zero; it yields
// zero pages and no next page.
func TestNewPagination_zeroLimit(t *testing.T) {
	meta := domain.NewPagination(domain.PageRequest{Page: 0, Limit: 0}, 25)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
	assert.EqualValues(t, 25, meta.TotalNotes)
}

func TestNewPagination_emptyResult(t *testing.T) {
	meta := domain.NewPagination(domain.PageRequest{Page: 0, Limit: 10}, 0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}
