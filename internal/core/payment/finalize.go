package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

// Finalizer turns a draft into a submitted booking once the receipt has been
// confirmed by the upload collaborator.
type Finalizer struct {
	Now          func() time.Time
	NewReference func(now time.Time) string
}

func NewFinalizer() *Finalizer {
	return &Finalizer{
		Now:          time.Now,
		NewReference: NewReference,
	}
}

// NewReference builds references like BK-20250301-3F9A1C2B.
func NewReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BK-%s-%s", now.UTC().Format("20060102"), suffix)
}

func (f *Finalizer) Finalize(d domain.BookingDraft, receiptConfirmed bool) (domain.BookingDraft, error) {
	if d.IsSubmitted() {
		return d, domain.ErrAlreadySubmitted
	}
	if !receiptConfirmed {
		return d, domain.ErrReceiptMissing
	}

	now := f.Now().UTC()
	d.Reference = f.NewReference(now)
	d.Status = domain.BookingSubmittedStatus
	d.SubmittedAt = &now
	d.ReceiptPresent = true

	return d, nil
}

func Finalize(d domain.BookingDraft, receiptConfirmed bool) (domain.BookingDraft, error) {
	return NewFinalizer().Finalize(d, receiptConfirmed)
}
