package handlers

import (
	"errors"
	"log"
	"net/http"

	"lumetric/internal/constants"
	"lumetric/internal/i18n"
	"lumetric/internal/models"
	"lumetric/internal/services"

	"github.com/gin-gonic/gin"
)

// IntakeHandler captures author applications from the insights page.
type IntakeHandler struct {
	intakeService *services.IntakeService
}

func NewIntakeHandler(intakeService *services.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// Apply inserts a write-once author application. On success the form is
// cleared by the redirect; on failure the visitor keeps their entered data
// (the form is re-posted client side) and sees a blocking error notice.
func (h *IntakeHandler) Apply(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	app := models.AuthorApplication{
		FullName:     c.PostForm("full_name"),
		Email:        c.PostForm("email"),
		Whatsapp:     c.PostForm("whatsapp"),
		PortfolioURL: c.PostForm("portfolio_url"),
		Niche:        c.PostForm("niche"),
		HeadlineTest: c.PostForm("headline_test"),
		Pitch:        c.PostForm("pitch"),
	}

	if err := h.intakeService.SubmitApplication(&app); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrMissingFields) || errors.Is(err, services.ErrInvalidNiche) {
			status = http.StatusBadRequest
		} else {
			log.Printf("failed to submit application: %v", err)
		}
		c.JSON(status, gin.H{"error": i18n.T(lang, "blog.apply_error")})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": i18n.T(lang, "blog.apply_success")})
}
