// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names, one per event type. Routing uses the default exchange with
// the queue name as routing key.
const (
	AppointmentConfirmedQueue = "appointment.confirmed"
	AppointmentCancelledQueue = "appointment.cancelled"
	OrderPlacedQueue          = "order.placed"
)

// AppointmentConfirmedEvent is published when a booking is confirmed. It
// carries enough for downstream consumers to notify or log without
// querying the primary database.
type AppointmentConfirmedEvent struct {
	AppointmentID     int64  `json:"appointment_id"`
	AccountIdentifier string `json:"account_identifier"`
	ServiceName       string `json:"service"`
	DisplayDate       string `json:"display_date"`
	TimeSlot          string `json:"time"`
	ConfirmedAt       string `json:"confirmed_at"`
}

// AppointmentCancelledEvent is published when a customer cancels an
// appointment.
type AppointmentCancelledEvent struct {
	AppointmentID     int64  `json:"appointment_id"`
	AccountIdentifier string `json:"account_identifier"`
	ServiceName       string `json:"service"`
	DisplayDate       string `json:"display_date"`
	TimeSlot          string `json:"time"`
	CancelledAt       string `json:"cancelled_at"`
}

// OrderPlacedEvent is published when a checkout is accepted and an order
// summary is produced.
type OrderPlacedEvent struct {
	OrderID           string `json:"order_id"`
	AccountIdentifier string `json:"account_identifier"`
	ItemCount         int    `json:"item_count"`
	Total             string `json:"total"`
	PlacedAt          string `json:"placed_at"`
}
