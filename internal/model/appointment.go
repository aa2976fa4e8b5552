package model

import "time"

// Appointment is a confirmed service booking as stored in the
// `appointments` table. Appointments are created on confirmation and
// deleted on cancellation, never updated.
//
// Fields:
//  ID                – unique id, the UnixMilli timestamp at confirmation.
//  AccountIdentifier – owning account's identifier (email/phone).
//  ServiceName       – booked service, captured from the triggering card.
//  Date              – calendar date of the appointment (midnight UTC).
//  DisplayDate       – formatted date, e.g. "14 de Março de 2026".
//  TimeSlot          – chosen time of day, zero-padded "HH:MM".
//  ImageURL          – service image shown on the appointment card.
//  PriceDisplay      – price string as advertised, e.g. "a partir de R$ 120,00".
//  CreatedAt         – timestamp of confirmation.
type Appointment struct {
	ID                int64     `json:"id"`                 // appointments.id
	AccountIdentifier string    `json:"-"`                  // appointments.account_identifier
	ServiceName       string    `json:"service"`            // appointments.service_name
	Date              time.Time `json:"date"`               // appointments.appointment_date
	DisplayDate       string    `json:"display_date"`       // appointments.display_date
	TimeSlot          string    `json:"time"`               // appointments.time_slot
	ImageURL          string    `json:"image_url"`          // appointments.image_url
	PriceDisplay      string    `json:"price_display"`      // appointments.price_display
	CreatedAt         time.Time `json:"created_at"`         // appointments.created_at
}
