package models

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

// BookingRecord is one ledger entry. Class details are denormalized
// copies captured at booking time and never re-read from the catalog.
// At most one booked-status record may exist per (class, email) pair;
// the store enforces nothing, the booking service does.
type BookingRecord struct {
	Email       string  `json:"email"`
	ClassID     string  `json:"class_id"`
	ClassType   string  `json:"class_type"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	TeacherName string  `json:"teacher_name"`
	Status      string  `json:"status"`
}

// LedgerEntry pairs a booking record with its store-assigned key. The
// key is only known to the ledger, so listings carry it for deletion.
type LedgerEntry struct {
	Key    string        `json:"key"`
	Record BookingRecord `json:"record"`
}

type OutcomeStatus string

const (
	OutcomeBooked        OutcomeStatus = "booked"
	OutcomeAlreadyBooked OutcomeStatus = "already_booked"
	OutcomeFailed        OutcomeStatus = "failed"
)

// ItemOutcome is the per-class result of a cart booking. One outcome is
// produced per processed item so a partial failure stays actionable.
type ItemOutcome struct {
	ClassID string        `json:"class_id"`
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`
}

// CancelResult reports a completed cancellation. Warnings collect
// non-fatal step failures (e.g. the class record no longer exists);
// earlier deletions are never rolled back.
type CancelResult struct {
	Warnings []string `json:"warnings,omitempty"`
}
