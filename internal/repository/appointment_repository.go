package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/edenspa/eden-spa-api/internal/model"
)

// AppointmentRepo provides access to the `appointments` table. Each row
// belongs to one account identifier; cancellation is a hard delete.
type AppointmentRepo struct{ DB *sql.DB }

func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{DB: db} }

// Create inserts a confirmed appointment. The caller supplies the ID
// (the UnixMilli confirmation timestamp), so no LastInsertId round trip
// is needed.
func (r *AppointmentRepo) Create(ctx context.Context, ap model.Appointment) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO appointments
		 (id, account_identifier, service_name, appointment_date, display_date, time_slot, image_url, price_display)
		 VALUES (?,?,?,?,?,?,?,?)`,
		ap.ID, ap.AccountIdentifier, ap.ServiceName, ap.Date, ap.DisplayDate, ap.TimeSlot, ap.ImageURL, ap.PriceDisplay)
	return err
}

// ListByAccount returns all appointments for the given identifier ordered
// by appointment date, then time slot.
func (r *AppointmentRepo) ListByAccount(ctx context.Context, identifier string) ([]model.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, account_identifier, service_name, appointment_date, display_date, time_slot, image_url, price_display, created_at
		 FROM appointments WHERE account_identifier=? ORDER BY appointment_date ASC, time_slot ASC`,
		identifier)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Appointment, 0)
	for rows.Next() {
		var ap model.Appointment
		if err := rows.Scan(&ap.ID, &ap.AccountIdentifier, &ap.ServiceName, &ap.Date, &ap.DisplayDate, &ap.TimeSlot, &ap.ImageURL, &ap.PriceDisplay, &ap.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ap)
	}
	return out, rows.Err()
}

// Get fetches a single appointment owned by the given identifier.
func (r *AppointmentRepo) Get(ctx context.Context, identifier string, id int64) (model.Appointment, error) {
	var ap model.Appointment
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, account_identifier, service_name, appointment_date, display_date, time_slot, image_url, price_display, created_at
		 FROM appointments WHERE id=? AND account_identifier=? LIMIT 1`,
		id, identifier).Scan(&ap.ID, &ap.AccountIdentifier, &ap.ServiceName, &ap.Date, &ap.DisplayDate, &ap.TimeSlot, &ap.ImageURL, &ap.PriceDisplay, &ap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Appointment{}, ErrAppointmentNotFound
	}
	return ap, err
}

// Delete removes an appointment if it exists and belongs to the
// identifier. It reports whether a row was actually removed; deleting an
// unknown id is a silent no-op for the caller.
func (r *AppointmentRepo) Delete(ctx context.Context, identifier string, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM appointments WHERE id=? AND account_identifier=?", id, identifier)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
