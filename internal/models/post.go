package models

import (
	"html/template"
	"strconv"

	"gorm.io/gorm"
)

// Post is the stored article record.
type Post struct {
	gorm.Model
	Category   string `gorm:"not null;index" json:"category" form:"category"`
	Title      string `gorm:"not null" json:"title" form:"title"`
	Slug       string `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `gorm:"type:text;not null" json:"content" form:"content"`
	ImageURL   string `json:"image_url" form:"image_url"`
	FiresCount int    `gorm:"not null;default:0" json:"fires_count"`
	AuthorName string `json:"author_name"`
	IsNew      bool   `gorm:"not null;default:false" json:"is_new"`
}

func (Post) TableName() string {
	return "blog_posts"
}

// FeedPost is the view model for a post in the insights feed. Identifiers are
// strings so that deep-link comparison tolerates numeric ids from the store.
type FeedPost struct {
	ID          string
	Category    string
	Title       string
	Slug        string
	Excerpt     string
	Content     template.HTML
	ImageURL    string
	DateLabel   string
	ReadingTime string
	Fires       int
	Author      string
	IsNew       bool
}

// FeedID renders a stored identifier the way the feed exposes it.
func FeedID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
