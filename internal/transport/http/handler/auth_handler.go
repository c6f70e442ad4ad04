package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-book-api/internal/service"
	resp "contact-book-api/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerIn struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailCode(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.auth.Register(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": u.ID, "username": u.Username})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailCode(c, http.StatusBadRequest, err.Error())
		return
	}
	tok, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}
