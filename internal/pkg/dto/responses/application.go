package responses

import "intake-service/internal/app/models"

// ApplicationRow is a list row decorated with the render-ready label,
// severity class and action availability for the viewer's role.
type ApplicationRow struct {
	models.PatientApplication
	StatusLabel    string `json:"statusLabel"`
	StatusSeverity string `json:"statusSeverity"`
	ActionsEnabled bool   `json:"actionsEnabled"`
}

// ActionResult reports the outcome of a workflow action together with
// the re-fetched list, so the caller never renders a stale table even
// when the backend turned the action down.
type ActionResult struct {
	Accepted     bool             `json:"accepted"`
	Message      string           `json:"message,omitempty"`
	Applications []ApplicationRow `json:"applications"`
}

type UserRow struct {
	models.User
	ActionsEnabled bool `json:"actionsEnabled"`
}

type InvoiceRow struct {
	models.Invoice
	StatusLabel    string `json:"statusLabel"`
	StatusSeverity string `json:"statusSeverity"`
}
