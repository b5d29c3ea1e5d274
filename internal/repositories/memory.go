package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"yogabooking/internal/domain"
	"yogabooking/internal/domain/models"
)

// In-memory stores used as the default runtime driver and by tests.
// The exported *Err fields inject store failures so partial-write paths
// can be exercised deliberately.

type MemoryCatalog struct {
	mu      sync.RWMutex
	classes map[string]models.ClassRecord
	order   []string

	GetErr  error
	PutErr  error
	ListErr error
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{classes: make(map[string]models.ClassRecord)}
}

// Seed inserts a class, assigning an ID when missing. Classes normally
// come from the scheduling process, which is outside this service.
func (s *MemoryCatalog) Seed(c models.ClassRecord) models.ClassRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, ok := s.classes[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.classes[c.ID] = c
	return c
}

func (s *MemoryCatalog) GetClass(ctx context.Context, id string) (models.ClassRecord, error) {
	if s.GetErr != nil {
		return models.ClassRecord{}, domain.StoreError{Op: "catalog.get", Err: s.GetErr}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.classes[id]
	if !ok {
		return models.ClassRecord{}, domain.NotFoundError{Resource: "class"}
	}
	c.Roster = append([]string(nil), c.Roster...)
	return c, nil
}

func (s *MemoryCatalog) PutRoster(ctx context.Context, id string, roster []string) error {
	if s.PutErr != nil {
		return domain.StoreError{Op: "catalog.put_roster", Err: s.PutErr}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok {
		return domain.NotFoundError{Resource: "class"}
	}
	c.Roster = append([]string(nil), roster...)
	s.classes[id] = c
	return nil
}

func (s *MemoryCatalog) ListClasses(ctx context.Context) ([]models.ClassRecord, error) {
	if s.ListErr != nil {
		return nil, domain.StoreError{Op: "catalog.list", Err: s.ListErr}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ClassRecord, 0, len(s.order))
	for _, id := range s.order {
		c := s.classes[id]
		c.Roster = append([]string(nil), c.Roster...)
		out = append(out, c)
	}
	return out, nil
}

type MemoryLedger struct {
	mu      sync.RWMutex
	entries map[string]models.BookingRecord
	order   []string

	AppendErr error
	ListErr   error
	DeleteErr error
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{entries: make(map[string]models.BookingRecord)}
}

func (s *MemoryLedger) Append(ctx context.Context, rec models.BookingRecord) (string, error) {
	if s.AppendErr != nil {
		return "", domain.StoreError{Op: "ledger.append", Err: s.AppendErr}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := uuid.NewString()
	s.entries[key] = rec
	s.order = append(s.order, key)
	return key, nil
}

func (s *MemoryLedger) ListBookings(ctx context.Context) ([]models.LedgerEntry, error) {
	if s.ListErr != nil {
		return nil, domain.StoreError{Op: "ledger.list", Err: s.ListErr}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LedgerEntry, 0, len(s.order))
	for _, key := range s.order {
		if rec, ok := s.entries[key]; ok {
			out = append(out, models.LedgerEntry{Key: key, Record: rec})
		}
	}
	return out, nil
}

func (s *MemoryLedger) Delete(ctx context.Context, key string) error {
	if s.DeleteErr != nil {
		return domain.StoreError{Op: "ledger.delete", Err: s.DeleteErr}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return domain.NotFoundError{Resource: "booking"}
	}
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type MemoryProfiles struct {
	mu       sync.RWMutex
	profiles map[string]map[string]models.ClassSummary

	PutErr    error
	DeleteErr error
	GetErr    error
}

func NewMemoryProfiles() *MemoryProfiles {
	return &MemoryProfiles{profiles: make(map[string]map[string]models.ClassSummary)}
}

func (s *MemoryProfiles) PutClassEntry(ctx context.Context, customerKey, classID string, details models.ClassSummary) error {
	if s.PutErr != nil {
		return domain.StoreError{Op: "profiles.put", Err: s.PutErr}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.profiles[customerKey]
	if !ok {
		entries = make(map[string]models.ClassSummary)
		s.profiles[customerKey] = entries
	}
	entries[classID] = details
	return nil
}

func (s *MemoryProfiles) DeleteClassEntry(ctx context.Context, customerKey, classID string) error {
	if s.DeleteErr != nil {
		return domain.StoreError{Op: "profiles.delete", Err: s.DeleteErr}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if entries, ok := s.profiles[customerKey]; ok {
		delete(entries, classID)
		if len(entries) == 0 {
			delete(s.profiles, customerKey)
		}
	}
	return nil
}

func (s *MemoryProfiles) GetClassEntries(ctx context.Context, customerKey string) (map[string]models.ClassSummary, error) {
	if s.GetErr != nil {
		return nil, domain.StoreError{Op: "profiles.get", Err: s.GetErr}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.profiles[customerKey]
	if !ok {
		return map[string]models.ClassSummary{}, nil
	}
	out := make(map[string]models.ClassSummary, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out, nil
}
