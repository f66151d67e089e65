package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/ports"
)

const (
	KeyBookingData    = "completeBookingData"
	KeyBookingOption  = "bookingOption"
	KeyTourSelections = "tourSelections"
)

// DraftStore persists the whole draft under one session key. There is no
// field level write; every save replaces the record.
type DraftStore struct {
	store ports.SessionStore
	log   *zap.Logger
}

func NewDraftStore(store ports.SessionStore, log *zap.Logger) *DraftStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DraftStore{store: store, log: log}
}

// Load rehydrates the draft for a session. A missing or unreadable record
// yields a zero draft; only store I/O failures are returned as errors.
func (s *DraftStore) Load(ctx context.Context, sessionID string) (domain.BookingDraft, error) {
	var draft domain.BookingDraft

	raw, ok, err := s.store.Get(ctx, sessionID, KeyBookingData)
	if err != nil {
		return draft, fmt.Errorf("load draft: %w", err)
	}
	if ok {
		err := json.Unmarshal([]byte(raw), &draft)
		if err == nil {
			return draft, nil
		}
		s.log.Warn("resetting unreadable draft",
			zap.String("session_id", sessionID),
			zap.Error(fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)),
		)
		draft = domain.BookingDraft{}
	}

	if err := s.mergeLegacy(ctx, sessionID, &draft); err != nil {
		return draft, err
	}

	return draft, nil
}

// Exists reports whether the session has a draft record or a booking option.
func (s *DraftStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	for _, key := range []string{KeyBookingData, KeyBookingOption} {
		_, ok, err := s.store.Get(ctx, sessionID, key)
		if err != nil {
			return false, fmt.Errorf("check session: %w", err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// mergeLegacy seeds a draft that has no readable canonical record from the
// per-page staging keys. Once a record is saved it is the only source.
func (s *DraftStore) mergeLegacy(ctx context.Context, sessionID string, draft *domain.BookingDraft) error {
	if draft.BookingType == "" {
		raw, ok, err := s.store.Get(ctx, sessionID, KeyBookingOption)
		if err != nil {
			return fmt.Errorf("load booking option: %w", err)
		}
		if option := domain.BookingOption(raw); ok && option.IsValid() {
			draft.BookingType = option
		}
	}

	if !draft.Tours.Any() {
		raw, ok, err := s.store.Get(ctx, sessionID, KeyTourSelections)
		if err != nil {
			return fmt.Errorf("load tour selections: %w", err)
		}
		if ok {
			var tours domain.TourSelections
			if err := json.Unmarshal([]byte(raw), &tours); err != nil {
				s.log.Warn("ignoring unreadable tour selections",
					zap.String("session_id", sessionID),
					zap.Error(err),
				)
			} else {
				draft.Tours = tours
			}
		}
	}

	return nil
}

func (s *DraftStore) Save(ctx context.Context, sessionID string, draft domain.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.store.Set(ctx, sessionID, KeyBookingData, string(raw)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *DraftStore) SaveOption(ctx context.Context, sessionID string, option domain.BookingOption) error {
	if err := s.store.Set(ctx, sessionID, KeyBookingOption, string(option)); err != nil {
		return fmt.Errorf("save booking option: %w", err)
	}
	return nil
}

func (s *DraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID, KeyBookingData, KeyBookingOption, KeyTourSelections); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
