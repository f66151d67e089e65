package memory

import (
	"context"
	"sync"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

// BookingBackend keeps submitted bookings in memory, keyed by reference.
type BookingBackend struct {
	mu       sync.RWMutex
	bookings map[string]domain.BookingDraft
}

func NewBookingBackend() *BookingBackend {
	return &BookingBackend{bookings: make(map[string]domain.BookingDraft)}
}

func (b *BookingBackend) SubmitBooking(_ context.Context, draft domain.BookingDraft) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bookings[draft.Reference] = draft
	return nil
}

func (b *BookingBackend) Get(reference string) (domain.BookingDraft, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d, ok := b.bookings[reference]
	return d, ok
}
