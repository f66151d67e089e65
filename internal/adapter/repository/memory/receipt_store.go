package memory

import (
	"context"
	"io"
	"sync"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

const maxReceiptBytes = 5 << 20

type ReceiptStore struct {
	mu       sync.RWMutex
	receipts map[string][]byte
}

func NewReceiptStore() *ReceiptStore {
	return &ReceiptStore{receipts: make(map[string][]byte)}
}

func (s *ReceiptStore) UploadReceipt(_ context.Context, sessionID, _ string, r io.Reader) (bool, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxReceiptBytes+1))
	if err != nil {
		return false, err
	}
	if len(data) > maxReceiptBytes {
		return false, domain.ErrReceiptTooLarge
	}
	if len(data) == 0 {
		return false, nil
	}

	s.mu.Lock()
	s.receipts[sessionID] = data
	s.mu.Unlock()
	return true, nil
}

func (s *ReceiptStore) ReceiptConfirmed(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.receipts[sessionID]
	return ok, nil
}
