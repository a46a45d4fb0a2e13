// Package history keeps an in-process record of recent quoting requests.
// Entries live in a bounded in-memory list; there is no persistence.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"lendrock/rate-quote/internal/models"
	"lendrock/rate-quote/internal/pricing"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Entry is one recorded quoting request.
type Entry struct {
	ID           string                      `json:"id" yaml:"id"`
	RequestedAt  time.Time                   `json:"requestedAt" yaml:"requested_at"`
	Scenario     models.LoanScenario         `json:"scenario" yaml:"scenario"`
	Outcome      string                      `json:"outcome" yaml:"outcome"`
	ProgramCount int                         `json:"programCount" yaml:"program_count"`
	Target       *models.TargetPricingOption `json:"target,omitempty" yaml:"target,omitempty"`
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Occupancy     models.Occupancy
	Purpose       models.LoanPurpose
	MinLoanAmount decimal.Decimal
	Limit         int
}

// Store is a bounded, newest-first list of entries. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// NewStore creates a store keeping at most capacity entries.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{capacity: capacity}
}

// Record appends a quoting outcome, evicting the oldest entry when full.
func (s *Store) Record(scenario *models.LoanScenario, quote *pricing.Quote) Entry {
	entry := Entry{
		ID:          uuid.New().String(),
		RequestedAt: time.Now(),
		Scenario:    *scenario,
		Outcome:     quote.Outcome,
		Target:      quote.Target,
	}
	if quote.Result != nil {
		entry.ProgramCount = quote.Result.TotalPrograms
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
	s.mu.Unlock()

	log.WithFields(logrus.Fields{"id": entry.ID, "outcome": entry.Outcome}).Debug("Recorded pricing history entry")
	return entry
}

// List returns matching entries, newest first.
func (s *Store) List(filter Filter) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Entry
	for i := len(s.entries) - 1; i >= 0; i-- {
		entry := s.entries[i]
		if filter.Occupancy != "" && entry.Scenario.Occupancy != filter.Occupancy {
			continue
		}
		if filter.Purpose != "" && entry.Scenario.Purpose != filter.Purpose {
			continue
		}
		if !filter.MinLoanAmount.IsZero() && entry.Scenario.LoanAmount.LessThan(filter.MinLoanAmount) {
			continue
		}
		out = append(out, entry)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
