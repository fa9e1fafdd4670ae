package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/internal/service"
)

type ReservationHandler struct {
	svc    *service.ReservationSvc
	clubs  *service.ClubSvc
	courts *service.CourtSvc
}

func NewReservationHandler(svc *service.ReservationSvc, clubs *service.ClubSvc, courts *service.CourtSvc) *ReservationHandler {
	return &ReservationHandler{svc: svc, clubs: clubs, courts: courts}
}

type reservationDTO struct {
	ID          string  `json:"id"`
	CourtID     string  `json:"court_id"`
	UserID      string  `json:"user_id"`
	StartISO    string  `json:"start_iso"`
	EndISO      string  `json:"end_iso"`
	RecurrentID *string `json:"recurrent_id,omitempty"`
}

func toDTO(r *domain.Reservation) reservationDTO {
	return reservationDTO{
		ID:          r.ID,
		CourtID:     r.CourtID,
		UserID:      r.UserID,
		StartISO:    r.StartTime.UTC().Format(time.RFC3339),
		EndISO:      r.EndTime.UTC().Format(time.RFC3339),
		RecurrentID: r.RecurrentID,
	}
}

// parseRFC3339 normalizes every instant to UTC: club opening hours are
// stored as UTC wall clock, so slot boundaries are checked on the UTC grid.
func parseRFC3339(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	return t.UTC(), err == nil
}

// POST /v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		CourtID  string `json:"court_id" binding:"required"`
		StartISO string `json:"start_iso" binding:"required"`
		EndISO   string `json:"end_iso"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, ok := parseRFC3339(in.StartISO)
	if !ok {
		fail(c, domain.ErrInvalidRange)
		return
	}
	var end time.Time
	if in.EndISO != "" {
		if end, ok = parseRFC3339(in.EndISO); !ok {
			fail(c, domain.ErrInvalidRange)
			return
		}
	}

	res, err := h.svc.Create(c.Request.Context(), identityFrom(c), in.CourtID, start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDTO(res))
}

// POST /v1/reservations/recurrent (ADMIN)
func (h *ReservationHandler) CreateRecurrent(c *gin.Context) {
	var in struct {
		CourtID    string `json:"court_id" binding:"required"`
		StartISO   string `json:"start_iso" binding:"required"`
		EndISO     string `json:"end_iso" binding:"required"`
		EndDateISO string `json:"end_date_iso" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, ok1 := parseRFC3339(in.StartISO)
	end, ok2 := parseRFC3339(in.EndISO)
	endDate, ok3 := parseRFC3339(in.EndDateISO)
	if !ok1 || !ok2 || !ok3 {
		fail(c, domain.ErrInvalidRange)
		return
	}

	group, members, err := h.svc.CreateRecurrent(c.Request.Context(), identityFrom(c), in.CourtID, start, end, endDate)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]reservationDTO, 0, len(members))
	for i := range members {
		out = append(out, toDTO(&members[i]))
	}
	c.JSON(http.StatusCreated, gin.H{"recurrent_id": group.ID, "reservations": out})
}

// POST /v1/reservations/validate
//
// Backs the booking dialog: called on every end-time edit so the user
// sees the violation before confirming.
func (h *ReservationHandler) Validate(c *gin.Context) {
	var in struct {
		CourtID  string `json:"court_id" binding:"required"`
		StartISO string `json:"start_iso" binding:"required"`
		EndISO   string `json:"end_iso"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, ok := parseRFC3339(in.StartISO)
	if !ok {
		fail(c, domain.ErrInvalidRange)
		return
	}
	var end time.Time
	if in.EndISO != "" {
		if end, ok = parseRFC3339(in.EndISO); !ok {
			fail(c, domain.ErrInvalidRange)
			return
		}
	}

	if err := h.svc.Validate(c.Request.Context(), identityFrom(c), in.CourtID, start, end); err != nil {
		status, msg := statusAndMessage(err)
		c.JSON(status, gin.H{"valid": false, "code": err.Error(), "message": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// DELETE /v1/reservations/:id
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /v1/recurrents/:id?club_id= (ADMIN)
func (h *ReservationHandler) DeleteRecurrentGroup(c *gin.Context) {
	clubID := c.Query("club_id")
	if clubID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "club_id is required"})
		return
	}
	removed, err := h.svc.DeleteRecurrentGroup(c.Request.Context(), identityFrom(c), c.Param("id"), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// GET /v1/clubs/:clubId/reservations?from=RFC3339&to=RFC3339
func (h *ReservationHandler) ListByClub(c *gin.Context) {
	clubID := c.Param("clubId")
	from, to, err := h.window(c, clubID)
	if err != nil {
		fail(c, err)
		return
	}
	list, err := h.svc.ListByClub(c.Request.Context(), clubID, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]reservationDTO, 0, len(list))
	for i := range list {
		out = append(out, toDTO(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"reservations": out})
}

// GET /v1/reservations/mine
func (h *ReservationHandler) ListMine(c *gin.Context) {
	list, err := h.svc.ListMine(c.Request.Context(), identityFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]reservationDTO, 0, len(list))
	for i := range list {
		out = append(out, toDTO(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"reservations": out})
}

// calendarResource and calendarEvent are the projection the rendering
// widget consumes: courts as resources, reservations as events.
type calendarResource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type calendarEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	ResourceID  string  `json:"resourceId"`
	UserID      string  `json:"userId"`
	RecurrentID *string `json:"recurrentId,omitempty"`
}

// GET /v1/clubs/:clubId/calendar?from=&to=
func (h *ReservationHandler) Calendar(c *gin.Context) {
	clubID := c.Param("clubId")
	from, to, err := h.window(c, clubID)
	if err != nil {
		fail(c, err)
		return
	}
	list, err := h.svc.ListByClub(c.Request.Context(), clubID, from, to)
	if err != nil {
		fail(c, err)
		return
	}

	courts, err := h.courts.ListByClub(c.Request.Context(), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	resources := make([]calendarResource, 0, len(courts))
	for i := range courts {
		resources = append(resources, calendarResource{ID: courts[i].ID, Title: courts[i].Name})
	}

	events := make([]calendarEvent, 0, len(list))
	for i := range list {
		r := &list[i]
		events = append(events, calendarEvent{
			ID:          r.ID,
			Title:       r.User.Name,
			Start:       r.StartTime.UTC().Format(time.RFC3339),
			End:         r.EndTime.UTC().Format(time.RFC3339),
			ResourceID:  r.CourtID,
			UserID:      r.UserID,
			RecurrentID: r.RecurrentID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources, "events": events})
}

// window resolves the requested calendar window, defaulting to today
// through the club's visibility horizon.
func (h *ReservationHandler) window(c *gin.Context, clubID string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := 7
	if club, err := h.clubs.GetByID(c.Request.Context(), clubID); err == nil && club.Settings.DaysInFutureVisible > 0 {
		days = club.Settings.DaysInFutureVisible
	}
	to := from.AddDate(0, 0, days)

	if s := c.Query("from"); s != "" {
		t, ok := parseRFC3339(s)
		if !ok {
			return time.Time{}, time.Time{}, domain.ErrInvalidRange
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, ok := parseRFC3339(s)
		if !ok {
			return time.Time{}, time.Time{}, domain.ErrInvalidRange
		}
		to = t
	}
	return from, to, nil
}
