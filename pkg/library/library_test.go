package library

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "jane austen", Normalize("  Jane Austen  "))
	assert.Equal(t, "jane austen", Normalize("jane austen"))
	assert.Equal(t, "", Normalize("   "))
}

func TestTrimmedLength(t *testing.T) {
	assert.Equal(t, 11, TrimmedLength("  Jane Austen"))
	assert.Equal(t, 0, TrimmedLength("   "))
	// Rune count, not byte count.
	assert.Equal(t, 3, TrimmedLength(" Фёд "))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestIsFuture(t *testing.T) {
	assert.False(t, IsFuture(Today()))
	assert.False(t, IsFuture(Today().AddDate(0, 0, -1)))
	assert.True(t, IsFuture(Today().AddDate(0, 0, 1)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-31")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("31/08/2026")
	assert.Error(t, err)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Book '%s' is gone.", "Clean Code")
	assert.Equal(t, "Book 'Clean Code' is gone.", err.Error())
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidationError(errors.New("plain")))
}
