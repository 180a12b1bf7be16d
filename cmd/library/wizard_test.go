package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-management/pkg/models"
)

func TestRentBook(t *testing.T) {
	queue := setupTest(t)
	author := mustCreateAuthor(t, "Robert Martin")
	borrower := mustCreateBorrower(t, "Jane Smith")
	book := mustCreateBook(t, "Clean Architecture", author.ID)

	body := fmt.Sprintf(`{"borrowerUid":"%s"}`, borrower.BorrowerUid)
	w := invoke(rentBook, "POST", "/api/v1/books/"+book.BookUid+"/rent", body,
		gin.Param{Key: "bookUid", Value: book.BookUid})

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "close", response["action"])

	var rent models.Rent
	require.NoError(t, db.Where("book_id = ?", book.ID).First(&rent).Error)
	assert.Equal(t, borrower.ID, rent.BorrowerID)
	assert.True(t, rent.Open())

	require.Equal(t, 1, queue.Size())
	notification, ok := queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "Success", notification.Title)
	assert.Equal(t, "success", notification.Type)
	assert.Contains(t, notification.Message, "Clean Architecture")
	assert.Contains(t, notification.Message, "Jane Smith")
}

func TestRentBookUnavailable(t *testing.T) {
	queue := setupTest(t)
	author := mustCreateAuthor(t, "Robert Martin")
	jane := mustCreateBorrower(t, "Jane Smith")
	john := mustCreateBorrower(t, "John Doe")
	book := mustCreateBook(t, "Clean Architecture", author.ID)
	mustCreateRent(t, jane.ID, book.ID)

	body := fmt.Sprintf(`{"borrowerUid":"%s"}`, john.BorrowerUid)
	w := invoke(rentBook, "POST", "/api/v1/books/"+book.BookUid+"/rent", body,
		gin.Param{Key: "bookUid", Value: book.BookUid})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t,
		"The book 'Clean Architecture' is already rented to another user.",
		response["error"])
	assert.Equal(t, 0, queue.Size())
}

func TestRentBookNotFound(t *testing.T) {
	queue := setupTest(t)
	borrower := mustCreateBorrower(t, "Jane Smith")

	missing := uuid.New().String()
	body := fmt.Sprintf(`{"borrowerUid":"%s"}`, borrower.BorrowerUid)
	w := invoke(rentBook, "POST", "/api/v1/books/"+missing+"/rent", body,
		gin.Param{Key: "bookUid", Value: missing})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Book not found.", response["error"])
	assert.Equal(t, 0, queue.Size())
}

func TestRentBookWrongContext(t *testing.T) {
	queue := setupTest(t)
	borrower := mustCreateBorrower(t, "Jane Smith")

	body := fmt.Sprintf(`{"borrowerUid":"%s"}`, borrower.BorrowerUid)
	w := invoke(rentBook, "POST", "/api/v1/books/not-a-book/rent", body,
		gin.Param{Key: "bookUid", Value: "not-a-book"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "can only be invoked from a book record")
	assert.Equal(t, 0, queue.Size())
}

func TestRentBookMissingBorrower(t *testing.T) {
	queue := setupTest(t)
	author := mustCreateAuthor(t, "Robert Martin")
	book := mustCreateBook(t, "Clean Architecture", author.ID)

	w := invoke(rentBook, "POST", "/api/v1/books/"+book.BookUid+"/rent", `{}`,
		gin.Param{Key: "bookUid", Value: book.BookUid})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, queue.Size())
}
