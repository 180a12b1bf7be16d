package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-management/pkg/library"
)

// Author is a registry entry referenced by books. Authors are shared and
// never owned by a book; deleting an author referenced by any book fails.
type Author struct {
	ID        uint   `gorm:"primaryKey"`
	AuthorUid string `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string `gorm:"size:100;not null"`
	// Lowercased, trimmed copy of Name backing the case-insensitive
	// uniqueness rule at the storage level.
	NormalizedName string `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a *Author) BeforeSave(tx *gorm.DB) error {
	if a.AuthorUid == "" {
		a.AuthorUid = uuid.New().String()
	}

	length := library.TrimmedLength(a.Name)
	if length < 2 {
		return library.NewValidationError(
			"Author name must be at least 2 characters long (after removing extra spaces).")
	}
	if length > 100 {
		return library.NewValidationError(
			"Author name must be at most 100 characters long (after removing extra spaces).")
	}

	a.NormalizedName = library.Normalize(a.Name)

	// Duplicate scan is unfiltered: no scoping, no soft-delete carve-outs.
	query := tx.Model(&Author{}).Where("normalized_name = ?", a.NormalizedName)
	if a.ID != 0 {
		query = query.Where("id <> ?", a.ID)
	}
	var duplicates int64
	if err := query.Count(&duplicates).Error; err != nil {
		return err
	}
	if duplicates > 0 {
		return library.NewValidationError(
			"Author '%s' already exists (names are compared case-insensitive, ignoring extra spaces).",
			a.Name)
	}
	return nil
}
