package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-management/pkg/models"
)

func createBorrower(c *gin.Context) {
	var request struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	borrower := models.Borrower{
		Name:     request.Name,
		Category: request.Category,
	}
	if err := db.Create(&borrower).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"borrowerUid": borrower.BorrowerUid,
		"name":        borrower.Name,
		"category":    borrower.Category,
	})
}

func getBorrowers(c *gin.Context) {
	var borrowers []models.Borrower
	if err := db.Order("name ASC").Find(&borrowers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(borrowers))
	for i, borrower := range borrowers {
		items[i] = gin.H{
			"borrowerUid": borrower.BorrowerUid,
			"name":        borrower.Name,
			"category":    borrower.Category,
		}
	}
	c.JSON(http.StatusOK, items)
}
