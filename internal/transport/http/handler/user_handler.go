package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-book-api/internal/service"
	mdw "contact-book-api/internal/transport/http/middleware"
	resp "contact-book-api/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /api/user 当前登录用户
func (h *UserHandler) CurrentUser(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID, "username": u.Username})
}
