package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"library-management/pkg/config"
	"library-management/pkg/database"
	"library-management/pkg/library"
	"library-management/pkg/notify"
)

var (
	db            *gorm.DB
	notifications notify.Notifier
)

func main() {
	log.Println("Starting library service...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Connecting to database: %s@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
	db = database.Init(cfg.DSN())

	queue := notify.NewQueue(100)
	notifications = queue
	go deliverNotifications(queue)

	if cfg.Seed {
		seedDemoData()
	}

	server := gin.Default()
	server.POST("/api/v1/authors", createAuthor)
	server.GET("/api/v1/authors", getAuthors)
	server.GET("/api/v1/authors/:authorUid", getAuthor)
	server.DELETE("/api/v1/authors/:authorUid", deleteAuthor)
	server.POST("/api/v1/borrowers", createBorrower)
	server.GET("/api/v1/borrowers", getBorrowers)
	server.POST("/api/v1/books", createBook)
	server.GET("/api/v1/books", getBooks)
	server.GET("/api/v1/books/:bookUid", getBook)
	server.POST("/api/v1/books/:bookUid/rent", rentBook)
	server.POST("/api/v1/rents", createRent)
	server.GET("/api/v1/rents", getRents)
	server.POST("/api/v1/rents/:rentUid/return", returnRent)
	server.GET("/library/books", getPublicBooks)
	server.GET("/manage/health", healthCheck)

	log.Printf("Library service starting on %s", cfg.ListenAddr)
	if err := server.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// deliverNotifications drains the toast queue in the background. Delivery is
// best effort and never reaches back into the write paths.
func deliverNotifications(queue *notify.Queue) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		drainNotifications(queue)
	}
}

func drainNotifications(queue *notify.Queue) {
	for {
		n, ok := queue.Dequeue()
		if !ok {
			return
		}
		log.Printf("notification [%s] %s: %s", n.Type, n.Title, n.Message)
	}
}

// respondError maps business-rule violations to 400 and everything else to
// 500, always as {"error": message}.
func respondError(c *gin.Context, err error) {
	if library.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func healthCheck(ctx *gin.Context) {
	sqlDB, err := db.DB()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
			"error":   err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"details": "Library service is active",
	})
}
