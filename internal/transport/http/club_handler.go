package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/internal/service"
)

type ClubHandler struct {
	svc *service.ClubSvc
}

func NewClubHandler(svc *service.ClubSvc) *ClubHandler {
	return &ClubHandler{svc: svc}
}

// GET /v1/clubs
func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

// GET /v1/clubs/:clubId — settings included, the booking dialog needs them.
func (h *ClubHandler) Get(c *gin.Context) {
	club, err := h.svc.GetByID(c.Request.Context(), c.Param("clubId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// PUT /v1/clubs/:clubId/settings (ADMIN)
func (h *ClubHandler) UpdateSettings(c *gin.Context) {
	var in struct {
		FirstBookableHour   int `json:"first_bookable_hour"`
		FirstBookableMinute int `json:"first_bookable_minute"`
		LastBookableHour    int `json:"last_bookable_hour"`
		LastBookableMinute  int `json:"last_bookable_minute"`
		HoursBeforeCancel   int `json:"hours_before_cancel"`
		DaysInFutureVisible int `json:"days_in_future_visible"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings := domain.ClubSettings{
		ClubID:              c.Param("clubId"),
		FirstBookableHour:   in.FirstBookableHour,
		FirstBookableMinute: in.FirstBookableMinute,
		LastBookableHour:    in.LastBookableHour,
		LastBookableMinute:  in.LastBookableMinute,
		HoursBeforeCancel:   in.HoursBeforeCancel,
		DaysInFutureVisible: in.DaysInFutureVisible,
	}
	if err := h.svc.UpdateSettings(c.Request.Context(), identityFrom(c), settings); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
