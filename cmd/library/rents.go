package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-management/pkg/library"
	"library-management/pkg/models"
	"library-management/pkg/notify"
)

func createRent(c *gin.Context) {
	var request struct {
		BorrowerUid string `json:"borrowerUid" binding:"required"`
		BookUid     string `json:"bookUid" binding:"required"`
		RentDate    string `json:"rentDate"`
		ReturnDate  string `json:"returnDate"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	var borrower models.Borrower
	if err := db.Where("borrower_uid = ?", request.BorrowerUid).First(&borrower).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Borrower not found."})
		return
	}
	var book models.Book
	if err := db.Where("book_uid = ?", request.BookUid).First(&book).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book not found."})
		return
	}

	rent := models.Rent{
		BorrowerID: borrower.ID,
		BookID:     book.ID,
	}
	if request.RentDate != "" {
		rentDate, err := library.ParseDate(request.RentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		rent.RentDate = rentDate
	}
	if request.ReturnDate != "" {
		returnDate, err := library.ParseDate(request.ReturnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		rent.ReturnDate = &returnDate
	}

	if err := db.Create(&rent).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rentResponse(&rent, &borrower, &book))
}

func getRents(c *gin.Context) {
	query := db.Model(&models.Rent{}).Preload("Borrower").Preload("Book")

	if bookUid := c.Query("bookUid"); bookUid != "" {
		var book models.Book
		if err := db.Where("book_uid = ?", bookUid).First(&book).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		query = query.Where("book_id = ?", book.ID)
	}
	if borrowerUid := c.Query("borrowerUid"); borrowerUid != "" {
		var borrower models.Borrower
		if err := db.Where("borrower_uid = ?", borrowerUid).First(&borrower).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Borrower not found"})
			return
		}
		query = query.Where("borrower_id = ?", borrower.ID)
	}

	var rents []models.Rent
	if err := query.Order("rent_date DESC, id DESC").Find(&rents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(rents))
	for i, rent := range rents {
		item := rentItem(&rent)
		item["borrower"] = gin.H{
			"borrowerUid": rent.Borrower.BorrowerUid,
			"name":        rent.Borrower.Name,
		}
		item["bookUid"] = rent.Book.BookUid
		items[i] = item
	}
	c.JSON(http.StatusOK, items)
}

func returnRent(c *gin.Context) {
	rentUid := c.Param("rentUid")

	var rent models.Rent
	if err := db.Where("rent_uid = ?", rentUid).First(&rent).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rent not found"})
		return
	}

	if !rent.Open() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This book was already returned."})
		return
	}

	// The only field this action may touch.
	today := library.Today()
	rent.ReturnDate = &today

	if err := db.Save(&rent).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rentUid":    rent.RentUid,
		"returnDate": rent.ReturnDate.Format(library.DateFormat),
	})
}

// rentBook is the rent-issuance flow behind the catalog's "Rent Book" button:
// validate context, existence and availability, append the ledger entry, then
// emit a best-effort toast and tell the caller to close the dialog.
func rentBook(c *gin.Context) {
	bookUid := c.Param("bookUid")
	if _, err := uuid.Parse(bookUid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "This action can only be invoked from a book record.",
		})
		return
	}

	var request struct {
		BorrowerUid string `json:"borrowerUid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	var book models.Book
	if err := db.Where("book_uid = ?", bookUid).First(&book).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found."})
		return
	}
	if !book.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("The book '%s' is already rented to another user.", book.Title),
		})
		return
	}

	var borrower models.Borrower
	if err := db.Where("borrower_uid = ?", request.BorrowerUid).First(&borrower).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Borrower not found."})
		return
	}

	rent := models.Rent{
		BorrowerID: borrower.ID,
		BookID:     book.ID,
	}
	if err := db.Create(&rent).Error; err != nil {
		respondError(c, err)
		return
	}

	notifications.Notify(notify.Notification{
		Title:   "Success",
		Message: fmt.Sprintf("Book %q has been rented to %s.", book.Title, borrower.Name),
		Type:    "success",
	})

	c.JSON(http.StatusOK, gin.H{
		"action":  "close",
		"rentUid": rent.RentUid,
	})
}

func rentItem(rent *models.Rent) gin.H {
	var returnDate interface{}
	if rent.ReturnDate != nil {
		returnDate = rent.ReturnDate.Format(library.DateFormat)
	}
	return gin.H{
		"rentUid":    rent.RentUid,
		"rentDate":   rent.RentDate.Format(library.DateFormat),
		"returnDate": returnDate,
		"open":       rent.Open(),
	}
}

func rentResponse(rent *models.Rent, borrower *models.Borrower, book *models.Book) gin.H {
	item := rentItem(rent)
	item["borrower"] = gin.H{
		"borrowerUid": borrower.BorrowerUid,
		"name":        borrower.Name,
	}
	item["bookUid"] = book.BookUid
	return item
}
