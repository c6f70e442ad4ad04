package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-book-api/internal/domain"
	"contact-book-api/internal/service"
	mdw "contact-book-api/internal/transport/http/middleware"
	resp "contact-book-api/internal/transport/http/response"
)

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactIn struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

func (in contactIn) fields() domain.ContactFields {
	return domain.ContactFields{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
	}
}

type searchQ struct {
	Firstname string `form:"firstname"`
	Lastname  string `form:"lastname"`
	Phone     string `form:"phone"`
	Email     string `form:"email"`
	Address   string `form:"address"`
	Page      int    `form:"page,default=0"`
	Size      int    `form:"size,default=20"`
}

// POST /api/contact-book
func (h *ContactHandler) Create(c *gin.Context) {
	var in contactIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailCode(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.contacts.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in.fields())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GET /api/contact-book/:id
func (h *ContactHandler) Get(c *gin.Context) {
	out, err := h.contacts.Get(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/contact-book/:id
func (h *ContactHandler) Update(c *gin.Context) {
	var in contactIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailCode(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.contacts.Update(c.Request.Context(), c.Param("id"), in.fields(), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/contact-book/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID)); err != nil {
		resp.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/contact-book 检索（全部字段为空时即"我的全部"）
func (h *ContactHandler) Search(c *gin.Context) {
	var q searchQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.FailCode(c, http.StatusBadRequest, err.Error())
		return
	}
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = 20
	}
	// 上限是夹紧不是回落：要 101 给 100
	if q.Size > 100 {
		q.Size = 100
	}
	page, err := h.contacts.Search(c.Request.Context(), c.GetString(mdw.KeyUserID), service.SearchParams{
		Firstname: q.Firstname,
		Lastname:  q.Lastname,
		Phone:     q.Phone,
		Email:     q.Email,
		Address:   q.Address,
	}, q.Page, q.Size)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
