package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/service"
)

type UserHandler struct {
	svc *service.UserSvc
}

func NewUserHandler(svc *service.UserSvc) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.svc.Me(c.Request.Context(), identityFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		ImageSrc string `json:"image_src"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.UpdateMe(c.Request.Context(), identityFrom(c), in.Name, in.ImageSrc)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /v1/users/me — the account goes away, its reservations do not.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.svc.DeleteMe(c.Request.Context(), identityFrom(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
