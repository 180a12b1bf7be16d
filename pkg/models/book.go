package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-management/pkg/library"
)

// Book is a catalog entry. IsAvailable and CurrentRenterID are derived from
// the book's rental records and recomputed on every rent mutation; they are
// stored so lists and filters do not need to walk the rent history.
type Book struct {
	ID      uint   `gorm:"primaryKey"`
	BookUid string `gorm:"type:uuid;uniqueIndex;not null"`
	Title   string `gorm:"size:50;not null"`
	// Lowercased, trimmed copy of Title; unique together with AuthorID.
	NormalizedTitle string `gorm:"size:50;not null;uniqueIndex:idx_books_title_author"`
	AuthorID        uint   `gorm:"not null;uniqueIndex:idx_books_title_author"`
	PublishedDate   *time.Time

	IsAvailable bool `gorm:"not null;default:true"`
	// Weak lookup only: the borrower of the single open rent, nil when none.
	CurrentRenterID *uint

	Author        Author    `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	CurrentRenter *Borrower `gorm:"foreignKey:CurrentRenterID"`
	Rents         []Rent    `gorm:"foreignKey:BookID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Book) BeforeSave(tx *gorm.DB) error {
	if b.BookUid == "" {
		b.BookUid = uuid.New().String()
	}

	length := library.TrimmedLength(b.Title)
	if length < 2 {
		return library.NewValidationError(
			"Book title must be at least 2 characters long (after removing extra spaces).")
	}
	if length > 50 {
		return library.NewValidationError(
			"Book title must be at most 50 characters long (after removing extra spaces).")
	}

	if b.AuthorID == 0 {
		return library.NewValidationError("Author is required.")
	}
	var author Author
	if err := tx.First(&author, b.AuthorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return library.NewValidationError("Author not found.")
		}
		return err
	}

	if b.PublishedDate != nil && library.IsFuture(*b.PublishedDate) {
		return library.NewValidationError("Published date cannot be in the future.")
	}

	b.NormalizedTitle = library.Normalize(b.Title)

	query := tx.Model(&Book{}).
		Where("normalized_title = ? AND author_id = ?", b.NormalizedTitle, b.AuthorID)
	if b.ID != 0 {
		query = query.Where("id <> ?", b.ID)
	}
	var duplicates int64
	if err := query.Count(&duplicates).Error; err != nil {
		return err
	}
	if duplicates > 0 {
		return library.NewValidationError(
			"A book titled '%s' by '%s' already exists.", b.Title, author.Name)
	}
	return nil
}
