// Package repositories holds the store adapters the booking service
// writes through. The backing stores are plain keyed collections with no
// multi-record transactions and no uniqueness constraints; every
// consistency guarantee lives in the calling service, never here.
package repositories

import (
	"context"

	"yogabooking/internal/domain/models"
)

// CatalogStore serves class records. The booking flow only reads them
// and rewrites the roster field.
type CatalogStore interface {
	GetClass(ctx context.Context, id string) (models.ClassRecord, error)
	PutRoster(ctx context.Context, id string, roster []string) error
	ListClasses(ctx context.Context) ([]models.ClassRecord, error)
}

// BookingLedger is the append-only collection of booking records. Keys
// are store-assigned; callers locate entries by scanning listings.
type BookingLedger interface {
	Append(ctx context.Context, rec models.BookingRecord) (string, error)
	ListBookings(ctx context.Context) ([]models.LedgerEntry, error)
	Delete(ctx context.Context, key string) error
}

// CustomerProfileStore keeps the per-customer denormalized view of
// booked classes, keyed by sanitized email.
type CustomerProfileStore interface {
	PutClassEntry(ctx context.Context, customerKey, classID string, details models.ClassSummary) error
	DeleteClassEntry(ctx context.Context, customerKey, classID string) error
	GetClassEntries(ctx context.Context, customerKey string) (map[string]models.ClassSummary, error)
}
