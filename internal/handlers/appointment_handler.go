package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/dto"
	"github.com/BruksfildServices01/barber-appointments/internal/httperr"
	"github.com/BruksfildServices01/barber-appointments/internal/httpresp"
	"github.com/BruksfildServices01/barber-appointments/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-appointments/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	transition *ucAppointment.TransitionAppointment
	get        *ucAppointment.GetAppointment
	list       *ucAppointment.ListAppointments
	notes      *ucAppointment.UpdateAppointmentNotes
	reschedule *ucAppointment.RescheduleAppointment
	remove     *ucAppointment.DeleteAppointment

	loc *time.Location
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	transition *ucAppointment.TransitionAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	notes *ucAppointment.UpdateAppointmentNotes,
	reschedule *ucAppointment.RescheduleAppointment,
	remove *ucAppointment.DeleteAppointment,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		transition: transition,
		get:        get,
		list:       list,
		notes:      notes,
		reschedule: reschedule,
		remove:     remove,
		loc:        loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID    string   `json:"barber_id" binding:"required"`
	ClientID    string   `json:"client_id"`
	ServiceIDs  []string `json:"service_ids"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	ClientNotes string   `json:"client_notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type UpdateNotesRequest struct {
	ClientNotes   *string `json:"client_notes"`
	InternalNotes *string `json:"internal_notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func callerOrAbort(c *gin.Context) (domain.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Missing caller identity.")
		return domain.Caller{}, false
	}
	return caller, true
}

// fail reports err and records it for the request logger.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.FromError(c, err)
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), caller, ucAppointment.CreateAppointmentInput{
		BarberID:    req.BarberID,
		ClientID:    req.ClientID,
		ServiceIDs:  req.ServiceIDs,
		StartTime:   start,
		ClientNotes: req.ClientNotes,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap, h.loc))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, h.loc))
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	page, limit := ucAppointment.Paging(queryInt(c, "page"), queryInt(c, "limit"))

	aps, err := h.list.All(c.Request.Context(), caller, page, limit)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.NewAppointmentList(aps, h.loc), page, limit)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	aps, err := h.list.ByClient(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentList(aps, h.loc))
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	aps, err := h.list.ByBarber(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentList(aps, h.loc))
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	target, err := domain.ParseStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err != nil {
		fail(c, err)
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), caller, c.Param("id"), target, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, h.loc))
}

func (h *AppointmentHandler) UpdateNotes(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.notes.Execute(c.Request.Context(), caller, c.Param("id"), ucAppointment.UpdateNotesInput{
		ClientNotes:   req.ClientNotes,
		InternalNotes: req.InternalNotes,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, h.loc))
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), caller, c.Param("id"), start)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, h.loc))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), caller, c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	httpresp.NoContent(c)
}
