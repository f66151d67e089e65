package memory_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/tour_wizard/internal/adapter/repository/memory"
	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

func TestSessionStore_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	require.NoError(t, store.Set(ctx, "a", "bookingOption", "tour"))
	require.NoError(t, store.Set(ctx, "b", "bookingOption", "package"))

	val, ok, err := store.Get(ctx, "a", "bookingOption")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tour", val)

	require.NoError(t, store.Delete(ctx, "a", "bookingOption"))
	_, ok, _ = store.Get(ctx, "a", "bookingOption")
	assert.False(t, ok)

	val, _, _ = store.Get(ctx, "b", "bookingOption")
	assert.Equal(t, "package", val)
}

func TestReceiptStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewReceiptStore()

	ok, err := store.ReceiptConfirmed(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.UploadReceipt(ctx, "a", "empty.png", bytes.NewReader(nil))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.UploadReceipt(ctx, "a", "gcash.png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = store.ReceiptConfirmed(ctx, "a")
	assert.True(t, ok)

	_, err = store.UploadReceipt(ctx, "b", "big.png", bytes.NewReader(make([]byte, 5<<20+1)))
	assert.ErrorIs(t, err, domain.ErrReceiptTooLarge)
}

func TestBookingBackend(t *testing.T) {
	backend := memory.NewBookingBackend()

	require.NoError(t, backend.SubmitBooking(context.Background(), domain.BookingDraft{Reference: "BK-1", FirstName: "Maria"}))

	got, ok := backend.Get("BK-1")
	require.True(t, ok)
	assert.Equal(t, "Maria", got.FirstName)

	_, ok = backend.Get("BK-2")
	assert.False(t, ok)
}
