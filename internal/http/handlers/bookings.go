package handlers

import (
	"net/http"

	"yogabooking/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type bookCartRequest struct {
	Email string `json:"email" binding:"required"`
}

type cancelBookingRequest struct {
	ClassID string `json:"class_id" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

// BookCart books every class in the cart and reports one result per
// item. Partial failures come back as per-item statuses, never as a
// batch-level error.
func (h Handlers) BookCart(c *gin.Context) {
	ct, ok := h.Carts.Get(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "cart not found", nil)
		return
	}
	var req bookCartRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	outcomes, err := h.booking(c).BookCart(c.Request.Context(), ct, req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	summary := gin.H{"booked": 0, "already_booked": 0, "failed": 0}
	for _, out := range outcomes {
		switch out.Status {
		case models.OutcomeBooked:
			summary["booked"] = summary["booked"].(int) + 1
		case models.OutcomeAlreadyBooked:
			summary["already_booked"] = summary["already_booked"].(int) + 1
		default:
			summary["failed"] = summary["failed"].(int) + 1
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"results": outcomes,
		"summary": summary,
		"cart":    cartView(c.Param("id"), ct),
	})
}

func (h Handlers) CancelBooking(c *gin.Context) {
	var req cancelBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.booking(c).CancelBooking(c.Request.Context(), models.BookingRecord{
		ClassID: req.ClassID,
		Email:   req.Email,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "cancelled",
		"warnings": res.Warnings,
	})
}

// GetBookings lists every ledger entry with its key, for the "my
// classes" view.
func (h Handlers) GetBookings(c *gin.Context) {
	entries, err := h.booking(c).ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": entries,
		"total":    len(entries),
	})
}

func (h Handlers) GetCustomerClasses(c *gin.Context) {
	entries, err := h.booking(c).CustomerClasses(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"classes": entries,
		"total":   len(entries),
	})
}

// GetBookingConfirmationPDF renders the confirmation document for a
// booked (class, email) pair.
func (h Handlers) GetBookingConfirmationPDF(c *gin.Context) {
	classID := c.Query("class_id")
	email := c.Query("email")
	if classID == "" || email == "" {
		RespondError(c, http.StatusBadRequest, "class_id and email are required", nil)
		return
	}
	pdf, filename, err := h.docs(c).GenerateConfirmation(c.Request.Context(), classID, email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
