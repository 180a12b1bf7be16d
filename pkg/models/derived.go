package models

import "gorm.io/gorm"

// RecomputeBookDerived rewrites a book's availability and current renter as a
// pure function of its rent rows. Called from Rent hooks so the derived
// columns can never drift from the ledger within a committed transaction.
//
// Available = no open rent. Current renter = borrower of the single open
// rent. More than one open rent is unreachable while the partial unique index
// holds; if it is ever bypassed, the latest rent date wins, then the highest
// id.
func RecomputeBookDerived(tx *gorm.DB, bookID uint) error {
	var open []Rent
	if err := tx.Where("book_id = ? AND return_date IS NULL", bookID).Find(&open).Error; err != nil {
		return err
	}

	var renterID *uint
	if len(open) > 0 {
		latest := open[0]
		for _, r := range open[1:] {
			if r.RentDate.After(latest.RentDate) ||
				(r.RentDate.Equal(latest.RentDate) && r.ID > latest.ID) {
				latest = r
			}
		}
		renterID = &latest.BorrowerID
	}

	// UpdateColumns keeps book hooks out of the loop: this is a derived-field
	// write, not a user edit.
	return tx.Model(&Book{}).Where("id = ?", bookID).
		UpdateColumns(map[string]interface{}{
			"is_available":      len(open) == 0,
			"current_renter_id": renterID,
		}).Error
}
