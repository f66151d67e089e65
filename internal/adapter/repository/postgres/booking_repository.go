package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/summary"
)

// BookingRepository records finalized bookings and their visible summary
// lines for the staff side.
type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) SubmitBooking(ctx context.Context, draft domain.BookingDraft) error {
	if draft.Reference == "" || !draft.IsSubmitted() {
		return errors.New("booking is not finalized")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO bookings (
		reference, first_name, last_name, email, contact_number,
		arrival_date, departure_date, tourist_count, booking_type,
		payment_plan, payment_method, down_payment, remaining_balance,
		grand_total, status, submitted_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = tx.ExecContext(ctx, queryHeader,
		draft.Reference,
		draft.FirstName,
		draft.LastName,
		draft.Email,
		draft.ContactNumber,
		draft.ArrivalDate,
		draft.DepartureDate,
		draft.TouristCount,
		draft.BookingType,
		draft.PaymentPlan,
		draft.PaymentMethod,
		draft.DownPayment,
		draft.RemainingBalance,
		draft.Amounts.GrandTotal,
		draft.Status,
		draft.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking header: %w", err)
	}

	queryItem := `
	INSERT INTO booking_items (id, booking_reference, category, label, detail, amount)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	stmt, err := tx.PrepareContext(ctx, queryItem)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}

	defer stmt.Close()

	for _, line := range summary.Project(draft).Lines {
		if !line.Visible {
			continue
		}
		_, err := stmt.ExecContext(ctx, uuid.New(), draft.Reference, line.Category, line.Label, line.Detail, line.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert booking item %s: %w", line.Category, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
