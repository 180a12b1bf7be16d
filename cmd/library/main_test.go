package main

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"library-management/pkg/database"
	"library-management/pkg/models"
	"library-management/pkg/notify"
)

// setupTest rebuilds the in-memory database and swaps the package globals the
// handlers use. Returns the notification queue for assertions.
func setupTest(t *testing.T) *notify.Queue {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(testDB))
	db = testDB

	queue := notify.NewQueue(10)
	notifications = queue
	return queue
}

func invoke(handler gin.HandlerFunc, method, target, body string, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Params = params
	handler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func mustCreateAuthor(t *testing.T, name string) models.Author {
	t.Helper()
	author := models.Author{Name: name}
	require.NoError(t, db.Create(&author).Error)
	return author
}

func mustCreateBorrower(t *testing.T, name string) models.Borrower {
	t.Helper()
	borrower := models.Borrower{Name: name}
	require.NoError(t, db.Create(&borrower).Error)
	return borrower
}

func mustCreateBook(t *testing.T, title string, authorID uint) models.Book {
	t.Helper()
	book := models.Book{Title: title, AuthorID: authorID}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func mustCreateRent(t *testing.T, borrowerID, bookID uint) models.Rent {
	t.Helper()
	rent := models.Rent{BorrowerID: borrowerID, BookID: bookID}
	require.NoError(t, db.Create(&rent).Error)
	return rent
}
