package redisstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

const (
	receiptKey     = "receipt"
	receiptNameKey = "receiptName"

	MaxReceiptBytes = 5 << 20
)

// ReceiptStore keeps the uploaded receipt next to the draft, with the same
// session lifetime.
type ReceiptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReceiptStore(client *redis.Client, ttl time.Duration) *ReceiptStore {
	return &ReceiptStore{client: client, ttl: ttl}
}

// UploadReceipt reports false for an empty upload.
func (s *ReceiptStore) UploadReceipt(ctx context.Context, sessionID, filename string, r io.Reader) (bool, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxReceiptBytes+1))
	if err != nil {
		return false, fmt.Errorf("read receipt: %w", err)
	}
	if len(data) > MaxReceiptBytes {
		return false, domain.ErrReceiptTooLarge
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := s.client.Set(ctx, sessionKey(sessionID, receiptKey), data, s.ttl).Err(); err != nil {
		return false, fmt.Errorf("redis set receipt: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID, receiptNameKey), filename, s.ttl).Err(); err != nil {
		return false, fmt.Errorf("redis set receipt name: %w", err)
	}
	return true, nil
}

func (s *ReceiptStore) ReceiptConfirmed(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID, receiptKey)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists receipt: %w", err)
	}
	return n > 0, nil
}
