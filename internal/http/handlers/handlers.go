package handlers

import (
	"yogabooking/internal/cart"
	"yogabooking/internal/http/middleware"
	"yogabooking/internal/repositories"
	"yogabooking/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers wires the store adapters and the cart manager into the HTTP
// surface. The handlers only consume the catalog reads, the cart
// mutators and the booking service operations.
type Handlers struct {
	Catalog  repositories.CatalogStore
	Ledger   repositories.BookingLedger
	Profiles repositories.CustomerProfileStore
	Carts    *cart.Manager

	CaseFoldEmails bool
}

func (h Handlers) booking(c *gin.Context) services.BookingService {
	return services.BookingService{
		Catalog:        h.Catalog,
		Ledger:         h.Ledger,
		Profiles:       h.Profiles,
		CaseFoldEmails: h.CaseFoldEmails,
		RequestID:      middleware.GetRequestID(c),
	}
}

func (h Handlers) catalog() services.CatalogService {
	return services.CatalogService{Catalog: h.Catalog}
}

func (h Handlers) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Ledger:    h.Ledger,
		RequestID: middleware.GetRequestID(c),
	}
}
