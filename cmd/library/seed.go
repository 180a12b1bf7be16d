package main

import (
	"log"

	"library-management/pkg/library"
	"library-management/pkg/models"
)

// seedDemoData loads a small idempotent demo catalog for manual testing.
func seedDemoData() {
	var author models.Author
	if err := db.Where("normalized_name = ?", "robert martin").First(&author).Error; err != nil {
		author = models.Author{Name: "Robert Martin"}
		if err := db.Create(&author).Error; err != nil {
			log.Printf("Failed to create demo author: %v", err)
			return
		}
		log.Printf("Created demo author: %s", author.Name)
	}

	var borrower models.Borrower
	if err := db.Where("name = ?", "Jane Smith").First(&borrower).Error; err != nil {
		borrower = models.Borrower{Name: "Jane Smith"}
		if err := db.Create(&borrower).Error; err != nil {
			log.Printf("Failed to create demo borrower: %v", err)
			return
		}
		log.Printf("Created demo borrower: %s", borrower.Name)
	}

	titles := []string{"Clean Architecture", "Clean Code"}
	for _, title := range titles {
		var book models.Book
		if err := db.Where("normalized_title = ? AND author_id = ?", library.Normalize(title), author.ID).
			First(&book).Error; err == nil {
			continue
		}
		book = models.Book{Title: title, AuthorID: author.ID}
		if err := db.Create(&book).Error; err != nil {
			log.Printf("Failed to create demo book %q: %v", title, err)
			continue
		}
		log.Printf("Created demo book: %s", book.Title)
	}

	log.Println("Library demo data seeded")
}
