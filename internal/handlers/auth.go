package handlers

import (
	"net/http"

	"lumetric/internal/constants"
	"lumetric/internal/i18n"
	"lumetric/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler is the trivial local access gate in front of the studio.
// It compares a single shared password from settings; deliberately a stub.
type AuthHandler struct {
	settingService *services.SettingService
}

func NewAuthHandler(settingService *services.SettingService) *AuthHandler {
	return &AuthHandler{settingService: settingService}
}

func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	session := sessions.Default(c)
	submittedPassword := c.PostForm("password")

	adminPassword, err := h.settingService.GetSetting(constants.SettingPassword)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"error": "internal server error",
		})
		return
	}

	if submittedPassword != adminPassword {
		lang := c.GetString(constants.ContextKeyLang)
		triggerToast(c, i18n.T(lang, "blog.login_denied"))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session.Set(constants.SessionKeyAuthenticated, true)
	session.Save()
	c.Redirect(http.StatusFound, "/studio")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/insights")
}
