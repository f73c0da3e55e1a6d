package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbase/middleware"
	"tourbase/services/user"
	"tourbase/utils"
)

// AuthHandler exposes account endpoints.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token := c.GetString("authToken")
	if err := h.Service.RevokeToken(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "sign out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// RegisterFCMToken stores the caller's push notification device token.
func (h *AuthHandler) RegisterFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	if err := h.Service.RegisterFCMToken(c.Request.Context(), userID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register device", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device registered"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	u, err := h.Service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u.Public())
}
