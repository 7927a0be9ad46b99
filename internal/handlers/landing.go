package handlers

import (
	"log"
	"net/http"

	"lumetric/internal/constants"
	"lumetric/internal/i18n"
	"lumetric/internal/models"
	"lumetric/internal/services"

	"github.com/gin-gonic/gin"
)

// LandingHandler serves the marketing page and its two capture forms.
type LandingHandler struct {
	intakeService *services.IntakeService
}

func NewLandingHandler(intakeService *services.IntakeService) *LandingHandler {
	return &LandingHandler{intakeService: intakeService}
}

func (h *LandingHandler) Landing(c *gin.Context) {
	render(c, http.StatusOK, "landing.html", gin.H{})
}

// SubmitLead inserts a consultation request. Failure keeps the visitor on
// the page with an error notice; nothing here is fatal.
func (h *LandingHandler) SubmitLead(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	lead := models.Lead{
		FullName:   c.PostForm("full_name"),
		Email:      c.PostForm("email"),
		Whatsapp:   c.PostForm("whatsapp"),
		SocialLink: c.PostForm("social_link"),
		Budget:     c.PostForm("budget"),
		Obstacle:   c.PostForm("obstacle"),
		Urgency:    c.PostForm("urgency"),
	}

	if err := h.intakeService.SubmitLead(&lead); err != nil {
		log.Printf("failed to submit lead: %v", err)
		triggerToast(c, i18n.T(lang, "footer.alert_error"))
		c.Redirect(http.StatusFound, "/#consultoria")
		return
	}

	triggerToast(c, i18n.T(lang, "modal.success_title"))
	c.Redirect(http.StatusFound, "/")
}

// Subscribe inserts a newsletter subscriber from the footer form.
func (h *LandingHandler) Subscribe(c *gin.Context) {
	lang := c.GetString(constants.ContextKeyLang)

	sub := models.NewsletterSubscriber{
		Email:    c.PostForm("email"),
		Whatsapp: c.PostForm("whatsapp"),
	}

	if err := h.intakeService.Subscribe(&sub); err != nil {
		log.Printf("failed to subscribe: %v", err)
		triggerToast(c, i18n.T(lang, "footer.alert_error"))
		c.Redirect(http.StatusFound, "/#newsletter")
		return
	}

	triggerToast(c, i18n.T(lang, "footer.alert_success"))
	c.Redirect(http.StatusFound, "/")
}
