package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusLabels(t *testing.T) {
	t.Run("pharmacist sees hand-off statuses from the receiving side", func(t *testing.T) {
		assert.Equal(t, "Sent to Pharmacist", StatusApprovedByDoctor.LabelFor(RolePharmacist))
		assert.Equal(t, "Objection by Pharmacist", StatusRejectedByPharmacist.LabelFor(RolePharmacist))
	})

	t.Run("other roles see the canonical names", func(t *testing.T) {
		assert.Equal(t, "Approved by Doctor", StatusApprovedByDoctor.LabelFor(RoleDoctor))
		assert.Equal(t, "Rejected by Pharmacist", StatusRejectedByPharmacist.LabelFor(RoleAdmin))
		assert.Equal(t, "Completed", StatusCompleted.LabelFor(RoleSales))
	})

	t.Run("severity classes", func(t *testing.T) {
		assert.Equal(t, "warning", StatusPending.Severity())
		assert.Equal(t, "info", StatusSentToSales.Severity())
		assert.Equal(t, "danger", StatusRejectedBySales.Severity())
		assert.Equal(t, "success", StatusCompleted.Severity())
	})
}

func TestCanAct(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		status  ApplicationStatus
		enabled bool
	}{
		{"doctor acts on pending", RoleDoctor, StatusPending, true},
		{"doctor acts on pharmacist rejection", RoleDoctor, StatusRejectedByPharmacist, true},
		{"doctor cannot act on completed", RoleDoctor, StatusCompleted, false},
		{"doctor cannot act on sent to sales", RoleDoctor, StatusSentToSales, false},
		{"pharmacist acts on reviewed", RolePharmacist, StatusReviewedByDoctor, true},
		{"pharmacist acts on approved", RolePharmacist, StatusApprovedByDoctor, true},
		{"pharmacist cannot act on pending", RolePharmacist, StatusPending, false},
		{"sales acts on sent to sales", RoleSales, StatusSentToSales, true},
		{"sales acts on own rejection", RoleSales, StatusRejectedBySales, true},
		{"sales cannot act on completed", RoleSales, StatusCompleted, false},
		{"admin never acts", RoleAdmin, StatusPending, false},
		{"patient never acts", RolePatient, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.enabled, CanAct(tc.role, tc.status))
		})
	}
}

func TestCanRequest(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		target  ApplicationStatus
		allowed bool
	}{
		{"doctor requests reviewed", RoleDoctor, StatusReviewedByDoctor, true},
		{"doctor requests approved", RoleDoctor, StatusApprovedByDoctor, true},
		{"doctor cannot request completion", RoleDoctor, StatusCompleted, false},
		{"pharmacist requests rejection", RolePharmacist, StatusRejectedByPharmacist, true},
		{"pharmacist requests sent to sales", RolePharmacist, StatusSentToSales, true},
		{"pharmacist cannot request doctor review", RolePharmacist, StatusReviewedByDoctor, false},
		{"sales requests rejection", RoleSales, StatusRejectedBySales, true},
		{"sales requests completion", RoleSales, StatusCompleted, true},
		{"sales cannot request pending", RoleSales, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanRequest(tc.role, tc.target))
		})
	}
}

func TestIsRejection(t *testing.T) {
	assert.True(t, StatusRejectedByPharmacist.IsRejection())
	assert.True(t, StatusRejectedBySales.IsRejection())
	assert.False(t, StatusPending.IsRejection())
	assert.False(t, StatusCompleted.IsRejection())
}
