package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/internal/service"
)

type CourtHandler struct {
	svc *service.CourtSvc
}

func NewCourtHandler(svc *service.CourtSvc) *CourtHandler {
	return &CourtHandler{svc: svc}
}

// GET /v1/clubs/:clubId/courts
func (h *CourtHandler) List(c *gin.Context) {
	courts, err := h.svc.ListByClub(c.Request.Context(), c.Param("clubId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courts": courts})
}

// POST /v1/clubs/:clubId/courts (ADMIN)
func (h *CourtHandler) Create(c *gin.Context) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		Surface string `json:"surface"`
		ForHire bool   `json:"for_hire"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	court, err := h.svc.Create(c.Request.Context(), identityFrom(c), domain.Court{
		Name:    in.Name,
		ClubID:  c.Param("clubId"),
		Surface: in.Surface,
		ForHire: in.ForHire,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, court)
}

// PUT /v1/courts/:id (ADMIN)
func (h *CourtHandler) Update(c *gin.Context) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		Surface string `json:"surface"`
		ForHire bool   `json:"for_hire"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	court, err := h.svc.Update(c.Request.Context(), identityFrom(c), domain.Court{
		ID:      c.Param("id"),
		Name:    in.Name,
		Surface: in.Surface,
		ForHire: in.ForHire,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

// DELETE /v1/courts/:id (ADMIN)
func (h *CourtHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
