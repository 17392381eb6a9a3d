package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/httperr"
	"github.com/BruksfildServices01/barber-appointments/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-appointments/internal/usecase/appointment"
)

// ScheduleHandler serves the public slot picker.
type ScheduleHandler struct {
	occupied  *ucAppointment.GetOccupiedSlots
	available *ucAppointment.GetAvailability
	loc       *time.Location
}

func NewScheduleHandler(
	occupied *ucAppointment.GetOccupiedSlots,
	available *ucAppointment.GetAvailability,
	loc *time.Location,
) *ScheduleHandler {
	return &ScheduleHandler{
		occupied:  occupied,
		available: available,
		loc:       loc,
	}
}

type slotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *ScheduleHandler) slots(in []domain.TimeSlot) []slotDTO {
	out := make([]slotDTO, 0, len(in))
	for _, s := range in {
		out = append(out, slotDTO{
			Start: s.Start.In(h.loc).Format(time.RFC3339),
			End:   s.End.In(h.loc).Format(time.RFC3339),
		})
	}
	return out
}

// GET /barbers/:id/occupied?date=YYYY-MM-DD
func (h *ScheduleHandler) Occupied(c *gin.Context) {
	date, err := parseDate(h.loc, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.occupied.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, h.slots(slots))
}

// GET /barbers/:id/availability?date=YYYY-MM-DD&services=a,b
func (h *ScheduleHandler) Availability(c *gin.Context) {
	date, err := parseDate(h.loc, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	var serviceIDs []string
	for _, id := range strings.Split(c.Query("services"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			serviceIDs = append(serviceIDs, id)
		}
	}

	slots, err := h.available.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:   c.Param("id"),
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, h.slots(slots))
}
