package models

type Role int

const (
	RoleAdmin Role = iota + 1
	RoleDoctor
	RolePharmacist
	RoleSales
	RolePatient
)

func (r Role) Name() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleDoctor:
		return "Doctor"
	case RolePharmacist:
		return "Pharmacist"
	case RoleSales:
		return "Sales"
	case RolePatient:
		return "Patient"
	default:
		return "Unknown"
	}
}

func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RolePatient
}

// IsStaff reports whether the role participates in the review workflow.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePharmacist || r == RoleSales
}
