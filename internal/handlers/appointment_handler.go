package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cliqtrix/consulting-chatbot/internal/availability"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	"github.com/cliqtrix/consulting-chatbot/internal/httpresp"
	ucBooking "github.com/cliqtrix/consulting-chatbot/internal/usecase/booking"
)

type AppointmentHandler struct {
	book       *ucBooking.BookAppointment
	list       *ucBooking.ListUpcoming
	reschedule *ucBooking.Reschedule
	cancel     *ucBooking.Cancel
}

func NewAppointmentHandler(
	book *ucBooking.BookAppointment,
	list *ucBooking.ListUpcoming,
	reschedule *ucBooking.Reschedule,
	cancel *ucBooking.Cancel,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		list:       list,
		reschedule: reschedule,
		cancel:     cancel,
	}
}

type BookRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID int    `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type SlotsRequest struct {
	Date string `json:"date"`
}

type FetchRequest struct {
	Email string `json:"email" binding:"required"`
}

type UpdateRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Email         string `json:"email" binding:"required"`
	NewDate       string `json:"newDate" binding:"required"`
	NewTime       string `json:"newTime" binding:"required"`
}

type CancelRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Email         string `json:"email" binding:"required"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "Error booking appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"success":       true,
		"message":       "✅ Appointment booked successfully!",
		"appointmentId": ap.ID,
		"details":       ap,
	})
}

// Slots returns the bookable time grid for a date. The grid is fixed, so
// the date is only echoed back.
func (h *AppointmentHandler) Slots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	httpresp.OK(c, gin.H{
		"slots": availability.Slots(),
		"date":  req.Date,
	})
}

func (h *AppointmentHandler) Fetch(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	apps, err := h.list.Execute(c.Request.Context(), req.Email)
	if err != nil {
		httperr.Internal(c, "Error fetching appointments")
		return
	}

	httpresp.OK(c, gin.H{"appointments": apps})
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	_, err := h.reschedule.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		AppointmentID: req.AppointmentID,
		Email:         req.Email,
		NewDate:       req.NewDate,
		NewTime:       req.NewTime,
	})
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		httperr.Internal(c, "Error updating appointment")
		return
	}

	httpresp.Success(c, "✅ Appointment rescheduled successfully!")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	_, err := h.cancel.Execute(c.Request.Context(), req.AppointmentID, req.Email)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		httperr.Internal(c, "Error cancelling appointment")
		return
	}

	httpresp.Success(c, "✅ Appointment cancelled successfully!")
}
