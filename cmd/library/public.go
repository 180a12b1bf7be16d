package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"library-management/pkg/models"
)

// publicBook is the fixed element shape of the public catalog payload. The
// author_id key carries the author's name, null when unset.
type publicBook struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Author *string `json:"author_id"`
	Avail  bool    `json:"available"`
}

// getPublicBooks lists every book with its computed availability. Public, no
// filtering, no pagination. JSON by default; a caller whose Accept header
// expresses a non-JSON preference gets the same payload wrapped in <pre>.
func getPublicBooks(c *gin.Context) {
	var books []models.Book
	if err := db.Preload("Author").Order("id ASC").Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]publicBook, len(books))
	for i, book := range books {
		var author *string
		if book.Author.Name != "" {
			name := book.Author.Name
			author = &name
		}
		items[i] = publicBook{
			ID:     book.ID,
			Name:   book.Title,
			Author: author,
			Avail:  book.IsAvailable,
		}
	}

	if wantsHTML(c.GetHeader("Accept")) {
		payload, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<pre>"+string(payload)+"</pre>"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// wantsHTML is true only when the Accept header's best-weighted media range
// neither mentions JSON nor is a bare wildcard. An absent header falls back
// to JSON; a browser header like "text/html,...,*/*;q=0.8" prefers HTML.
func wantsHTML(accept string) bool {
	if accept == "" {
		return false
	}

	bestQ := -1.0
	bestJSON := false
	for _, part := range strings.Split(accept, ",") {
		fields := strings.Split(part, ";")
		mediaRange := strings.ToLower(strings.TrimSpace(fields[0]))
		if mediaRange == "" {
			continue
		}
		q := 1.0
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if strings.HasPrefix(param, "q=") {
				if parsed, err := strconv.ParseFloat(param[2:], 64); err == nil {
					q = parsed
				}
			}
		}
		if q <= 0 {
			continue
		}
		acceptsJSON := strings.Contains(mediaRange, "json") || mediaRange == "*/*"
		if q > bestQ {
			bestQ = q
			bestJSON = acceptsJSON
		} else if q == bestQ && acceptsJSON {
			bestJSON = true
		}
	}
	if bestQ < 0 {
		return false
	}
	return !bestJSON
}
