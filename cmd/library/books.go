package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"library-management/pkg/library"
	"library-management/pkg/models"
)

func createBook(c *gin.Context) {
	var request struct {
		Title         string `json:"title" binding:"required"`
		AuthorUid     string `json:"authorUid" binding:"required"`
		PublishedDate string `json:"publishedDate"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	var author models.Author
	if err := db.Where("author_uid = ?", request.AuthorUid).First(&author).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Author not found."})
		return
	}

	book := models.Book{
		Title:    request.Title,
		AuthorID: author.ID,
	}
	if request.PublishedDate != "" {
		published, err := library.ParseDate(request.PublishedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		book.PublishedDate = &published
	}

	if err := db.Create(&book).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bookUid":   book.BookUid,
		"title":     book.Title,
		"author":    author.Name,
		"available": book.IsAvailable,
	})
}

func getBooks(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	sizeStr := c.DefaultQuery("size", "10")
	availableOnly := c.DefaultQuery("available", "false") == "true"

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 || size > 100 {
		size = 10
	}

	query := db.Model(&models.Book{}).Preload("Author").Preload("CurrentRenter")
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	var totalElements int64
	if err := query.Count(&totalElements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var books []models.Book
	offset := (page - 1) * size
	if err := query.Order("title ASC").Offset(offset).Limit(size).Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(books))
	for i, book := range books {
		items[i] = bookItem(&book)
	}
	c.JSON(http.StatusOK, gin.H{
		"page":          page,
		"pageSize":      size,
		"totalElements": totalElements,
		"items":         items,
	})
}

func getBook(c *gin.Context) {
	bookUid := c.Param("bookUid")

	var book models.Book
	err := db.Preload("Author").Preload("CurrentRenter").
		Preload("Rents", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("rent_date DESC, id DESC").Preload("Borrower")
		}).
		Where("book_uid = ?", bookUid).First(&book).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	history := make([]gin.H, len(book.Rents))
	for i, rent := range book.Rents {
		item := rentItem(&rent)
		item["borrower"] = rent.Borrower.Name
		history[i] = item
	}

	item := bookItem(&book)
	item["rents"] = history
	c.JSON(http.StatusOK, item)
}

func bookItem(book *models.Book) gin.H {
	var publishedDate interface{}
	if book.PublishedDate != nil {
		publishedDate = book.PublishedDate.Format(library.DateFormat)
	}

	var currentRenter interface{}
	if book.CurrentRenter != nil {
		currentRenter = gin.H{
			"borrowerUid": book.CurrentRenter.BorrowerUid,
			"name":        book.CurrentRenter.Name,
		}
	}

	return gin.H{
		"bookUid":       book.BookUid,
		"title":         book.Title,
		"author":        book.Author.Name,
		"publishedDate": publishedDate,
		"available":     book.IsAvailable,
		"currentRenter": currentRenter,
	}
}
