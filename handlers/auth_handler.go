package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tactify-cms/helper"
	"tactify-cms/middleware"
	"tactify-cms/models"
	"tactify-cms/services"
)

type AuthHandler struct {
	sessions services.SessionService
	forms    *helper.FormHelper
}

func NewAuthHandler(sessions services.SessionService, forms *helper.FormHelper) *AuthHandler {
	return &AuthHandler{sessions: sessions, forms: forms}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{})
}

// Login establishes a session. The failure message is the same for an
// unknown email and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "signin.html", gin.H{"Message": "Invalid username or password."})
		return
	}

	if errs := h.forms.FormErrors(req); errs != nil {
		c.HTML(http.StatusBadRequest, "signin.html", gin.H{"Errors": errs, "Email": req.Email})
		return
	}

	_, sid, err := h.sessions.Login(req.Email, req.Password, req.RememberMe)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "signin.html", gin.H{"Message": "Invalid username or password.", "Email": req.Email})
		return
	}

	maxAge := int(h.sessions.Lifetime(req.RememberMe).Seconds())
	c.SetCookie(middleware.SessionCookie, sid, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session unconditionally; logging out while already
// logged out still just redirects home.
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, _ := c.Cookie(middleware.SessionCookie)
	_ = h.sessions.Logout(sid)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
