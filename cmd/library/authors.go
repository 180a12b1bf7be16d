package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-management/pkg/models"
)

func createAuthor(c *gin.Context) {
	var request struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	author := models.Author{Name: request.Name}
	if err := db.Create(&author).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"authorUid": author.AuthorUid,
		"name":      author.Name,
	})
}

func getAuthors(c *gin.Context) {
	var authors []models.Author
	if err := db.Order("name ASC").Find(&authors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(authors))
	for i, author := range authors {
		items[i] = gin.H{
			"authorUid": author.AuthorUid,
			"name":      author.Name,
		}
	}
	c.JSON(http.StatusOK, items)
}

func getAuthor(c *gin.Context) {
	authorUid := c.Param("authorUid")

	var author models.Author
	if err := db.Where("author_uid = ?", authorUid).First(&author).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authorUid": author.AuthorUid,
		"name":      author.Name,
	})
}

func deleteAuthor(c *gin.Context) {
	authorUid := c.Param("authorUid")

	var author models.Author
	if err := db.Where("author_uid = ?", authorUid).First(&author).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	var referenced int64
	if err := db.Model(&models.Book{}).Where("author_id = ?", author.ID).
		Count(&referenced).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if referenced > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Author is referenced by existing books."})
		return
	}

	if err := db.Delete(&author).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
