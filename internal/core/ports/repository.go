package ports

import (
	"context"
	"io"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

// SessionStore is the key/value store scoped to one browsing session. Values
// are opaque strings; a missing key is reported with ok == false.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

// BookingBackend receives finalized bookings.
type BookingBackend interface {
	SubmitBooking(ctx context.Context, draft domain.BookingDraft) error
}

// ReceiptUploader stores the customer's payment receipt and reports whether a
// receipt exists for the session.
type ReceiptUploader interface {
	UploadReceipt(ctx context.Context, sessionID, filename string, r io.Reader) (bool, error)
	ReceiptConfirmed(ctx context.Context, sessionID string) (bool, error)
}
