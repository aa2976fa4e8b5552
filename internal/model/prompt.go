package model

// Prompt kinds. An info prompt carries only a dismiss affordance; a confirm
// prompt carries accept/decline, with accept executing the bound action.
const (
	PromptInfo    = "info"
	PromptConfirm = "confirm"
)

// Actions a confirm prompt can bind. The action executes server-side when
// the prompt is accepted, replacing the stored-callback pattern of the
// original dialog with an explicit request/response decision.
const (
	ActionCancelAppointment = "cancel_appointment"
	ActionCheckout          = "checkout"
)

// Prompt is the single pending message/confirmation dialog for a session.
// Writing a new prompt replaces any pending one, so a stale accept can
// never fire a superseded action.
type Prompt struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Text          string `json:"text"`
	Action        string `json:"action,omitempty"`
	AppointmentID int64  `json:"appointment_id,omitempty"`
}
