package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"lumetric/internal/constants"
	"lumetric/internal/models"
	"lumetric/internal/services"
	"lumetric/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	feedService *services.FeedService
	postService *services.PostService
}

func NewBlogHandler(feedService *services.FeedService, postService *services.PostService) *BlogHandler {
	return &BlogHandler{feedService: feedService, postService: postService}
}

// Insights renders the article feed, or a single open article when the
// `post` deep-link parameter matches a loaded identifier.
func (h *BlogHandler) Insights(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	feed, err := h.feedService.Load(lang)
	feedFailed := false
	if err != nil {
		// The view must survive a failed load: empty feed plus a notice.
		log.Printf("failed to load feed: %v", err)
		feed = nil
		feedFailed = true
	}

	if postID := c.Query("post"); postID != "" {
		if selected := services.FindByID(feed, postID); selected != nil {
			h.showArticle(c, selected)
			return
		}
		// Unknown identifier: fall through to the grid, not an error.
	}

	category := c.DefaultQuery("category", models.CategoryAll)
	query := c.Query("q")
	visible := services.Filter(feed, category, query)

	render(c, http.StatusOK, "insights.html", gin.H{
		"Posts":          visible,
		"Categories":     models.FilterCategories(),
		"NicheOptions":   models.MasterCategories,
		"ActiveCategory": category,
		"Query":          query,
		"FeedFailed":     feedFailed,
	})
}

// showArticle opens a post: engagement state resets so the reader can fire
// once in this viewing, and share links are built for the deep-link URL.
func (h *BlogHandler) showArticle(c *gin.Context, post *models.FeedPost) {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyFiredPost, "")
	session.Save()

	settingsMap := map[string]string{}
	if v, ok := c.Get(constants.ContextKeySettings); ok {
		settingsMap = v.(map[string]string)
	}
	siteName := settingsMap[constants.SettingSiteName]
	baseURL := settingsMap[constants.SettingBaseURL]
	pageURL := fmt.Sprintf("%s/insights?post=%s", baseURL, post.ID)

	render(c, http.StatusOK, "article.html", gin.H{
		"Post":     post,
		"PageURL":  pageURL,
		"Share":    utils.BuildShareLinks(pageURL, post.Title, siteName),
		"HasFired": false,
	})
}

// Fire registers one engagement increment for the open post. The client has
// already incremented its displayed counter; the store is set to that value.
// Repeated calls within the same viewing session are no-ops.
func (h *BlogHandler) Fire(c *gin.Context) {
	postID := c.PostForm("post_id")
	displayed, err := strconv.Atoi(c.DefaultPostForm("fires", "0"))
	if postID == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id and fires are required"})
		return
	}

	id, convErr := strconv.ParseUint(postID, 10, 64)
	if convErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	session := sessions.Default(c)
	if fired, ok := session.Get(constants.SessionKeyFiredPost).(string); ok && fired == postID {
		c.JSON(http.StatusOK, gin.H{"fires": displayed, "fired": true})
		return
	}

	newCount := displayed + 1
	session.Set(constants.SessionKeyFiredPost, postID)
	session.Save()

	// A store failure is logged but the optimistic count stands; the next
	// full feed load reconciles with whatever the store holds.
	if err := h.postService.Fire(uint(id), newCount); err != nil {
		log.Printf("failed to update fires for post %s: %v", postID, err)
	}

	c.JSON(http.StatusOK, gin.H{"fires": newCount, "fired": true})
}

func (h *BlogHandler) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}
