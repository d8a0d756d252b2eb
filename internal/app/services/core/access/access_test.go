package access

import (
	"testing"

	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func sessionWithRole(role string) *models.Session {
	return &models.Session{
		Token: "token-1",
		User:  models.UserProfile{ID: "u-1", Role: role},
	}
}

func TestDecide(t *testing.T) {
	t.Run("unauthenticated requests to protected routes redirect to landing", func(t *testing.T) {
		for _, path := range []string{
			constvars.PathDashboard,
			constvars.PathPatients,
			constvars.PathPatients + "/p-1",
			constvars.PathAppointments,
			constvars.PathAppointments + "/a-1/status",
			constvars.PathConsultation,
			constvars.PathPrescriptions,
			constvars.PathBilling,
			constvars.PathUserManagement,
			constvars.PathUserManagement + "/u-1/status",
		} {
			assert.Equal(t, DecisionRedirectLanding, Decide(path, nil), path)
		}
	})

	t.Run("authenticated users are bounced off guest pages", func(t *testing.T) {
		sess := sessionWithRole(constvars.RoleNurse)
		assert.Equal(t, DecisionRedirectDashboard, Decide(constvars.PathLanding, sess))
		assert.Equal(t, DecisionRedirectDashboard, Decide(constvars.PathLogin, sess))
	})

	t.Run("guests are admitted to guest pages", func(t *testing.T) {
		assert.Equal(t, DecisionAdmit, Decide(constvars.PathLanding, nil))
		assert.Equal(t, DecisionAdmit, Decide(constvars.PathLogin, nil))
	})

	t.Run("admin only route rejects every other role", func(t *testing.T) {
		for _, role := range constvars.AllRoles() {
			decision := Decide(constvars.PathUserManagement, sessionWithRole(role))
			if role == constvars.RoleAdmin {
				assert.Equal(t, DecisionAdmit, decision, role)
			} else {
				assert.Equal(t, DecisionRedirectLanding, decision, role)
			}
		}
	})

	t.Run("incomplete session is treated as unauthenticated", func(t *testing.T) {
		tokenOnly := &models.Session{Token: "token-1"}
		assert.Equal(t, DecisionRedirectLanding, Decide(constvars.PathPatients, tokenOnly))
		assert.Equal(t, DecisionAdmit, Decide(constvars.PathLogin, tokenOnly))

		userOnly := &models.Session{User: models.UserProfile{ID: "u-1", Role: constvars.RoleDoctor}}
		assert.Equal(t, DecisionRedirectLanding, Decide(constvars.PathPatients, userOnly))
	})

	t.Run("unknown paths are admitted for the router to 404", func(t *testing.T) {
		assert.Equal(t, DecisionAdmit, Decide("/favicon.ico", nil))
	})
}

func TestVisibleMenu(t *testing.T) {
	labels := func(entries []MenuEntry) []string {
		out := make([]string, len(entries))
		for i, entry := range entries {
			out[i] = entry.Label
		}
		return out
	}

	t.Run("accountant sees dashboard and billing only", func(t *testing.T) {
		assert.Equal(t, []string{"Dashboard", "Billing"}, labels(VisibleMenu(constvars.RoleAccountant)))
	})

	t.Run("doctor menu in table order", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Dashboard", "Patients", "Appointments", "Consultation", "Prescriptions"},
			labels(VisibleMenu(constvars.RoleDoctor)),
		)
	})

	t.Run("admin sees everything except consultation", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Dashboard", "Patients", "Appointments", "Prescriptions", "Billing", "User Management"},
			labels(VisibleMenu(constvars.RoleAdmin)),
		)
	})

	t.Run("lab technician gets dashboard only", func(t *testing.T) {
		assert.Equal(t, []string{"Dashboard"}, labels(VisibleMenu(constvars.RoleLabTechnician)))
	})

	t.Run("unknown role gets empty menu", func(t *testing.T) {
		assert.Empty(t, VisibleMenu("JANITOR"))
	})
}
