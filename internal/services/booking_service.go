package services

import (
	"context"
	"fmt"
	"strings"

	"yogabooking/internal/cart"
	"yogabooking/internal/domain"
	"yogabooking/internal/domain/models"
	"yogabooking/internal/repositories"
	"yogabooking/internal/utils"
)

// BookingService is the reconciliation engine behind BookCart and
// CancelBooking.
//
// Booking a class records it in three places: the booking ledger, the
// class roster and the customer's profile. The stores give no
// transactions, so the writes run as an ordered sequence of
// independently committed steps. A failing step surfaces as that item's
// outcome and never rolls back earlier steps; the batch always goes on
// to the next cart item.
//
// Duplicate detection reads the class roster. Roster and ledger can
// drift after a partial failure, in which case the roster is treated as
// the source of truth for "already booked".
//
// Known limitation: the roster update is a read-modify-write with no
// concurrency check, so two customers booking the same class at the
// same moment can lose one roster entry. The ledger records both.
type BookingService struct {
	Catalog  repositories.CatalogStore
	Ledger   repositories.BookingLedger
	Profiles repositories.CustomerProfileStore

	// CaseFoldEmails makes roster and ledger lookups compare emails
	// case-insensitively. Off by default: the email is a natural key
	// and historic data was written case-sensitively.
	CaseFoldEmails bool

	RequestID string
}

// BookCart books every class in the cart for the given email, one item
// at a time, and returns one outcome per processed item. Items that
// booked are removed from the cart; items that were duplicates or
// failed stay in it for the customer to retry or discard.
func (s BookingService) BookCart(ctx context.Context, c *cart.Cart, customerEmail string) ([]models.ItemOutcome, error) {
	email := utils.TrimOrEmpty(customerEmail)
	if email == "" {
		return nil, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	customerKey := utils.SanitizeEmailKey(s.lookupEmail(email))

	items := c.Items()
	outcomes := make([]models.ItemOutcome, 0, len(items))
	for _, class := range items {
		out := s.bookOne(ctx, class, email, customerKey)
		utils.LogEvent(s.RequestID, "booking", "book_item",
			fmt.Sprintf("class_id=%s status=%s", out.ClassID, out.Status))
		outcomes = append(outcomes, out)
	}

	for _, out := range outcomes {
		if out.Status == models.OutcomeBooked {
			c.Remove(out.ClassID)
		}
	}
	return outcomes, nil
}

// bookOne runs the per-item write sequence. Steps after a failing one
// are skipped for that item only.
func (s BookingService) bookOne(ctx context.Context, class models.ClassRecord, email, customerKey string) models.ItemOutcome {
	out := models.ItemOutcome{ClassID: class.ID}

	// 1. duplicate check against the current roster
	current, err := s.Catalog.GetClass(ctx, class.ID)
	if err != nil {
		out.Status = models.OutcomeFailed
		if domain.IsNotFound(err) {
			out.Message = "This class is no longer available."
		} else {
			out.Message = "Could not read the class record."
		}
		return out
	}
	if current.RosterContains(s.lookupEmail(email), s.CaseFoldEmails) {
		out.Status = models.OutcomeAlreadyBooked
		out.Message = "This email has already booked this class."
		return out
	}

	// 2. append the ledger record, denormalized from the cart snapshot
	rec := models.BookingRecord{
		Email:       email,
		ClassID:     class.ID,
		ClassType:   class.ClassType,
		Date:        class.Date,
		Price:       class.Price,
		TeacherName: class.TeacherName,
		Status:      models.StatusBooked,
	}
	if _, err := s.Ledger.Append(ctx, rec); err != nil {
		out.Status = models.OutcomeFailed
		out.Message = "Could not record the booking."
		return out
	}

	// 3. read-modify-write the roster (no concurrency check, see above)
	roster := append(current.Roster, email)
	if err := s.Catalog.PutRoster(ctx, class.ID, roster); err != nil {
		out.Status = models.OutcomeFailed
		out.Message = "Booked, but updating the class roster failed."
		return out
	}

	// 4. profile entry, first write wins
	entries, err := s.Profiles.GetClassEntries(ctx, customerKey)
	if err != nil {
		out.Status = models.OutcomeFailed
		out.Message = "Booked, but reading your profile failed."
		return out
	}
	if _, ok := entries[class.ID]; !ok {
		details := models.ClassSummary{
			ClassType:   class.ClassType,
			Price:       class.Price,
			TeacherName: class.TeacherName,
			Date:        class.Date,
		}
		if err := s.Profiles.PutClassEntry(ctx, customerKey, class.ID, details); err != nil {
			out.Status = models.OutcomeFailed
			out.Message = "Booked, but updating your profile failed."
			return out
		}
	}

	out.Status = models.OutcomeBooked
	out.Message = fmt.Sprintf("You have successfully booked the %s class with %s on %s!",
		class.ClassType, class.TeacherName, class.Date)
	return out
}

// CancelBooking undoes the three writes for one (class, email) pair.
// The ledger entry is located by scanning, since its key is
// store-assigned. Steps after the ledger deletion are best-effort:
// their failures become warnings, never a rollback.
func (s BookingService) CancelBooking(ctx context.Context, booking models.BookingRecord) (models.CancelResult, error) {
	var res models.CancelResult

	email := utils.TrimOrEmpty(booking.Email)
	if email == "" || booking.ClassID == "" {
		return res, domain.ValidationError{Msg: "class id and email are required"}
	}

	// 1. locate the ledger entry
	entries, err := s.Ledger.ListBookings(ctx)
	if err != nil {
		return res, err
	}
	key := ""
	for _, e := range entries {
		if e.Record.ClassID == booking.ClassID &&
			s.emailsEqual(e.Record.Email, email) &&
			e.Record.Status == models.StatusBooked {
			key = e.Key
			break
		}
	}
	if key == "" {
		return res, domain.NotFoundError{Resource: "booking"}
	}

	// 2. delete it
	if err := s.Ledger.Delete(ctx, key); err != nil {
		return res, err
	}

	// 3. remove the email from the roster; a missing class is only a warning
	if class, err := s.Catalog.GetClass(ctx, booking.ClassID); err != nil {
		if domain.IsNotFound(err) {
			res.Warnings = append(res.Warnings, "class not found in the catalog; roster left as is")
		} else {
			res.Warnings = append(res.Warnings, "could not read the class roster")
		}
	} else if class.RosterContains(s.lookupEmail(email), s.CaseFoldEmails) {
		roster := make([]string, 0, len(class.Roster))
		for _, e := range class.Roster {
			if !s.emailsEqual(e, email) {
				roster = append(roster, e)
			}
		}
		if err := s.Catalog.PutRoster(ctx, booking.ClassID, roster); err != nil {
			res.Warnings = append(res.Warnings, "could not update the class roster")
		}
	}

	// 4. drop only this class's profile entry; other bookings stay
	customerKey := utils.SanitizeEmailKey(s.lookupEmail(email))
	if err := s.Profiles.DeleteClassEntry(ctx, customerKey, booking.ClassID); err != nil {
		res.Warnings = append(res.Warnings, "could not remove the class from your profile")
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("class_id=%s warnings=%d", booking.ClassID, len(res.Warnings)))
	return res, nil
}

// ListBookings exposes the ledger for the "my classes" view.
func (s BookingService) ListBookings(ctx context.Context) ([]models.LedgerEntry, error) {
	return s.Ledger.ListBookings(ctx)
}

// CustomerClasses returns the denormalized profile entries for an email.
func (s BookingService) CustomerClasses(ctx context.Context, customerEmail string) (map[string]models.ClassSummary, error) {
	email := utils.TrimOrEmpty(customerEmail)
	if email == "" {
		return nil, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	return s.Profiles.GetClassEntries(ctx, utils.SanitizeEmailKey(s.lookupEmail(email)))
}

func (s BookingService) lookupEmail(email string) string {
	if s.CaseFoldEmails {
		return strings.ToLower(email)
	}
	return email
}

func (s BookingService) emailsEqual(a, b string) bool {
	if s.CaseFoldEmails {
		return strings.EqualFold(a, b)
	}
	return a == b
}
