package models

// ApplicationStatus is the closed set of workflow positions an intake
// application moves through. The records backend owns the transitions;
// the portal only requests them and renders the current position.
type ApplicationStatus int

const (
	StatusPending ApplicationStatus = iota + 1
	StatusReviewedByDoctor
	StatusApprovedByDoctor // forwarded to the pharmacist
	StatusRejectedByPharmacist
	StatusSentToSales
	StatusRejectedBySales
	StatusCompleted
)

func (s ApplicationStatus) Valid() bool {
	return s >= StatusPending && s <= StatusCompleted
}

func (s ApplicationStatus) Name() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusReviewedByDoctor:
		return "Reviewed by Doctor"
	case StatusApprovedByDoctor:
		return "Approved by Doctor"
	case StatusRejectedByPharmacist:
		return "Rejected by Pharmacist"
	case StatusSentToSales:
		return "Sent to Sales"
	case StatusRejectedBySales:
		return "Rejected by Sales"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// LabelFor returns the status label as it reads on a given role's screen.
// Statuses 3 and 4 describe a hand-off, so the pharmacist sees them from
// the receiving side.
func (s ApplicationStatus) LabelFor(role Role) string {
	if role == RolePharmacist {
		switch s {
		case StatusApprovedByDoctor:
			return "Sent to Pharmacist"
		case StatusRejectedByPharmacist:
			return "Objection by Pharmacist"
		}
	}
	return s.Name()
}

// Severity is the color/severity class rendered next to the label.
func (s ApplicationStatus) Severity() string {
	switch s {
	case StatusPending:
		return "warning"
	case StatusReviewedByDoctor, StatusApprovedByDoctor, StatusSentToSales:
		return "info"
	case StatusRejectedByPharmacist, StatusRejectedBySales:
		return "danger"
	case StatusCompleted:
		return "success"
	default:
		return "secondary"
	}
}

// IsRejection reports whether requesting this status requires feedback text.
func (s ApplicationStatus) IsRejection() bool {
	return s == StatusRejectedByPharmacist || s == StatusRejectedBySales
}

// actionable lists, per role, the statuses a row must be in for that
// role's action buttons to be enabled.
var actionable = map[Role][]ApplicationStatus{
	RoleDoctor:     {StatusPending, StatusRejectedByPharmacist},
	RolePharmacist: {StatusReviewedByDoctor, StatusApprovedByDoctor},
	RoleSales:      {StatusSentToSales, StatusRejectedBySales},
	RoleAdmin:      {},
}

// requestable lists, per role, the statuses that role may ask the
// backend to move an application into.
var requestable = map[Role][]ApplicationStatus{
	RoleDoctor:     {StatusReviewedByDoctor, StatusApprovedByDoctor},
	RolePharmacist: {StatusRejectedByPharmacist, StatusSentToSales},
	RoleSales:      {StatusRejectedBySales, StatusCompleted},
}

// CanAct reports whether a role's row actions are enabled for the
// application's current status.
func CanAct(role Role, current ApplicationStatus) bool {
	for _, s := range actionable[role] {
		if s == current {
			return true
		}
	}
	return false
}

// CanRequest reports whether a role may request the given target status.
func CanRequest(role Role, target ApplicationStatus) bool {
	for _, s := range requestable[role] {
		if s == target {
			return true
		}
	}
	return false
}

type PatientApplication struct {
	ApplicationID    int               `json:"application_id"`
	ApplicationTitle string            `json:"application_title"`
	SubmittedDate    string            `json:"SubmittedDate"`
	StatusID         ApplicationStatus `json:"status_id"`
	PatientName      string            `json:"PatientName,omitempty"`
	DoctorFeedback   string            `json:"DoctorFeedback,omitempty"`
	PharmacistNote   string            `json:"PharmacistNote,omitempty"`
	InvoiceID        int               `json:"InvoiceId,omitempty"`
	InvoiceAmount    float64           `json:"InvoiceAmount,omitempty"`
	AttachmentPath   string            `json:"ImagePath,omitempty"`
}

// SearchFields are the values the client-side substring filter runs over.
func (a PatientApplication) SearchFields(viewerRole Role) []string {
	return []string{
		a.ApplicationTitle,
		a.SubmittedDate,
		a.StatusID.LabelFor(viewerRole),
	}
}
