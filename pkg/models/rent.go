package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-management/pkg/library"
)

// Rent is one borrowing event. A nil ReturnDate means the rent is open and
// the book is out. The partial unique index on (book_id) for open rows backs
// the one-open-rent-per-book rule at the storage level; the scan in
// BeforeSave produces the user-facing message first.
type Rent struct {
	ID         uint      `gorm:"primaryKey"`
	RentUid    string    `gorm:"type:uuid;uniqueIndex;not null"`
	BorrowerID uint      `gorm:"not null"`
	BookID     uint      `gorm:"not null;uniqueIndex:idx_rents_one_open,where:return_date IS NULL"`
	RentDate   time.Time `gorm:"not null"`
	ReturnDate *time.Time

	Borrower Borrower `gorm:"foreignKey:BorrowerID"`
	Book     Book     `gorm:"foreignKey:BookID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the book is still out on this rent.
func (r *Rent) Open() bool {
	return r.ReturnDate == nil
}

func (r *Rent) BeforeSave(tx *gorm.DB) error {
	if r.RentUid == "" {
		r.RentUid = uuid.New().String()
	}
	if r.RentDate.IsZero() {
		r.RentDate = library.Today()
	}

	var borrower Borrower
	if err := tx.First(&borrower, r.BorrowerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return library.NewValidationError("Borrower not found.")
		}
		return err
	}
	if !borrower.Eligible() {
		return library.NewValidationError(
			"Borrower '%s' is not eligible to rent books.", borrower.Name)
	}

	var book Book
	if err := tx.First(&book, r.BookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return library.NewValidationError("Book not found.")
		}
		return err
	}

	if library.IsFuture(r.RentDate) {
		return library.NewValidationError("Rent date cannot be in the future.")
	}
	if r.ReturnDate != nil {
		if library.DateOnly(*r.ReturnDate).Before(library.DateOnly(r.RentDate)) {
			return library.NewValidationError("Return date cannot be earlier than rent date.")
		}
		if library.IsFuture(*r.ReturnDate) {
			return library.NewValidationError("Return date cannot be in the future.")
		}
	}

	if r.Open() {
		query := tx.Model(&Rent{}).
			Where("book_id = ? AND return_date IS NULL", r.BookID)
		if r.ID != 0 {
			query = query.Where("id <> ?", r.ID)
		}
		var openRents int64
		if err := query.Count(&openRents).Error; err != nil {
			return err
		}
		if openRents > 0 {
			renter := "unknown"
			if book.CurrentRenterID != nil {
				var current Borrower
				if err := tx.First(&current, *book.CurrentRenterID).Error; err == nil {
					renter = current.Name
				}
			}
			return library.NewValidationError(
				"This book is already rented and not returned (current renter: %s).", renter)
		}
	}
	return nil
}

// Derived book fields follow every rent mutation within the same transaction.

func (r *Rent) AfterSave(tx *gorm.DB) error {
	return RecomputeBookDerived(tx, r.BookID)
}

func (r *Rent) AfterDelete(tx *gorm.DB) error {
	return RecomputeBookDerived(tx, r.BookID)
}
