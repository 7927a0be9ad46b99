package handlers

import (
	"log"
	"net/http"
	"strconv"

	"lumetric/internal/constants"
	"lumetric/internal/models"
	"lumetric/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	feedService *services.FeedService
	postService *services.PostService
}

func NewAPIHandler(feedService *services.FeedService, postService *services.PostService) *APIHandler {
	return &APIHandler{feedService: feedService, postService: postService}
}

// FindPosts returns the feed as JSON, with the same category/query filtering
// as the insights page.
func (h *APIHandler) FindPosts(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	feed, err := h.feedService.Load(lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	category := c.DefaultQuery("category", models.CategoryAll)
	query := c.Query("q")
	visible := services.Filter(feed, category, query)

	c.JSON(http.StatusOK, gin.H{
		"posts": visible,
		"total": len(visible),
	})
}

// CreatePost handles the API request to publish a new post.
func (h *APIHandler) CreatePost(c *gin.Context) {
	var in struct {
		Title      string `json:"title"`
		Category   string `json:"category"`
		Content    string `json:"content"`
		ImageURL   string `json:"image_url"`
		AuthorName string `json:"author_name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Publish(services.PostDraft{
		Title:      in.Title,
		Category:   in.Category,
		Body:       in.Content,
		CoverImage: in.ImageURL,
		AuthorName: in.AuthorName,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// FirePost sets the engagement counter of one post to the supplied value.
func (h *APIHandler) FirePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var in struct {
		Fires int `json:"fires_count"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.postService.Fire(uint(id), in.Fires); err != nil {
		log.Printf("failed to update fires for post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "fires_count": in.Fires})
}
