package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-management/pkg/library"
)

// EligibleCategory marks borrowers allowed to rent books.
const EligibleCategory = "readers"

// Borrower is a party that can rent books. Only borrowers in the eligible
// category may appear on rental records.
type Borrower struct {
	ID          uint   `gorm:"primaryKey"`
	BorrowerUid string `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string `gorm:"size:80;not null"`
	Category    string `gorm:"size:40;not null;default:'readers'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Borrower) Eligible() bool {
	return b.Category == EligibleCategory
}

func (b *Borrower) BeforeSave(tx *gorm.DB) error {
	if b.BorrowerUid == "" {
		b.BorrowerUid = uuid.New().String()
	}
	if b.Category == "" {
		b.Category = EligibleCategory
	}
	if library.TrimmedLength(b.Name) < 2 {
		return library.NewValidationError(
			"Borrower name must be at least 2 characters long (after removing extra spaces).")
	}
	return nil
}
