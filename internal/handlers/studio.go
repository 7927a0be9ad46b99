package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lumetric/internal/constants"
	"lumetric/internal/i18n"
	"lumetric/internal/models"
	"lumetric/internal/services"

	"github.com/gin-gonic/gin"
)

// StudioHandler hosts the authoring workflow: the editor, publishing and the
// local author profile settings.
type StudioHandler struct {
	postService *services.PostService
}

func NewStudioHandler(postService *services.PostService) *StudioHandler {
	return &StudioHandler{postService: postService}
}

func (h *StudioHandler) ShowEditor(c *gin.Context) {
	render(c, http.StatusOK, "editor.html", gin.H{
		"Categories":      models.MasterCategories,
		"DefaultCategory": models.MasterCategories[0],
		"Profile":         readProfile(c),
	})
}

// Publish validates the draft and inserts it. Validation failures re-render
// the editor with the entered data intact and no insert issued.
func (h *StudioHandler) Publish(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	draft := services.PostDraft{
		Title:      c.PostForm("title"),
		Category:   c.DefaultPostForm("category", models.MasterCategories[0]),
		Body:       c.PostForm("content"),
		CoverImage: c.PostForm("cover_image"),
		AuthorName: readProfile(c).Name,
	}

	_, err := h.postService.Publish(draft)
	if err != nil {
		status := http.StatusInternalServerError
		message := i18n.T(lang, "blog.publish_error")
		switch {
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrInvalidCategory):
			status = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, services.ErrCoverTooLarge):
			status = http.StatusRequestEntityTooLarge
			message = err.Error()
		default:
			log.Printf("failed to publish post: %v", err)
		}
		render(c, status, "editor.html", gin.H{
			"Categories":      models.MasterCategories,
			"DefaultCategory": models.MasterCategories[0],
			"Profile":         readProfile(c),
			"Draft":           draft,
			"Error":           message,
		})
		return
	}

	// Success: the feed page reloads the whole collection, surfacing the
	// new article at the top.
	triggerToast(c, i18n.T(lang, "blog.publish_success"))
	c.Redirect(http.StatusFound, "/insights")
}

// SaveProfile persists the author profile to its client cookie immediately.
func (h *StudioHandler) SaveProfile(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	profile := models.AuthorProfile{
		Name:   c.PostForm("name"),
		Role:   c.PostForm("role"),
		Bio:    c.PostForm("bio"),
		Avatar: c.PostForm("avatar"),
	}
	if profile.Name == "" {
		profile.Name = models.DefaultAuthorProfile().Name
	}

	writeProfile(c, profile)
	triggerToast(c, i18n.T(lang, "blog.profile_saved"))
	c.Redirect(http.StatusFound, "/studio")
}

// readProfile loads the author profile from its namespaced cookie, falling
// back to the hardcoded default on absence or parse failure.
func readProfile(c *gin.Context) models.AuthorProfile {
	raw, err := c.Cookie(constants.CookieProfile)
	if err != nil {
		return models.DefaultAuthorProfile()
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return models.DefaultAuthorProfile()
	}
	var profile models.AuthorProfile
	if err := json.Unmarshal(decoded, &profile); err != nil {
		return models.DefaultAuthorProfile()
	}
	return profile
}

func writeProfile(c *gin.Context, profile models.AuthorProfile) {
	payload, err := json.Marshal(profile)
	if err != nil {
		log.Printf("failed to encode author profile: %v", err)
		return
	}
	encoded := base64.StdEncoding.EncodeToString(payload)
	c.SetCookie(constants.CookieProfile, encoded, 3600*24*365, "/", "", false, true)
}
