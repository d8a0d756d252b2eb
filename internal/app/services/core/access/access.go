package access

import (
	"strings"

	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"
)

// Decision is the outcome of the route guard for one navigation. Decide is
// total: every (path, session) pair maps to exactly one of these.
type Decision int

const (
	DecisionAdmit Decision = iota
	DecisionRedirectLanding
	DecisionRedirectDashboard
)

type RoutePolicy struct {
	Path         string
	MatchPrefix  bool
	RequiresAuth bool
	RequiresRole string
	GuestOnly    bool
}

// routePolicies is the single declarative source for route gating. The menu
// table below shares its paths; neither the guard middleware nor any page
// re-declares role rules.
var routePolicies = []RoutePolicy{
	{Path: constvars.PathLanding, GuestOnly: true},
	{Path: constvars.PathLogin, GuestOnly: true},
	{Path: constvars.PathLogout, RequiresAuth: true},
	{Path: constvars.PathDashboard, RequiresAuth: true},
	{Path: constvars.PathPatients, RequiresAuth: true},
	{Path: constvars.PathPatients + "/", MatchPrefix: true, RequiresAuth: true},
	{Path: constvars.PathAppointments, RequiresAuth: true},
	{Path: constvars.PathAppointments + "/", MatchPrefix: true, RequiresAuth: true},
	{Path: constvars.PathConsultation, RequiresAuth: true},
	{Path: constvars.PathPrescriptions, RequiresAuth: true},
	{Path: constvars.PathBilling, RequiresAuth: true},
	{Path: constvars.PathUserManagement, RequiresAuth: true, RequiresRole: constvars.RoleAdmin},
	{Path: constvars.PathUserManagement + "/", MatchPrefix: true, RequiresAuth: true, RequiresRole: constvars.RoleAdmin},
}

func policyFor(path string) (RoutePolicy, bool) {
	for _, policy := range routePolicies {
		if policy.MatchPrefix {
			if strings.HasPrefix(path, policy.Path) {
				return policy, true
			}
			continue
		}
		if path == policy.Path {
			return policy, true
		}
	}
	return RoutePolicy{}, false
}

// Decide maps a navigation to its guard outcome. It is pure and synchronous:
// no I/O, no side effects. A role mismatch redirects to the same landing
// target as a missing session; the guard does not distinguish the two.
func Decide(path string, sess *models.Session) Decision {
	authenticated := sess.IsComplete()

	policy, known := policyFor(path)
	if !known {
		return DecisionAdmit
	}

	if policy.GuestOnly {
		if authenticated {
			return DecisionRedirectDashboard
		}
		return DecisionAdmit
	}

	if policy.RequiresAuth && !authenticated {
		return DecisionRedirectLanding
	}
	if policy.RequiresRole != "" && sess.User.Role != policy.RequiresRole {
		return DecisionRedirectLanding
	}
	return DecisionAdmit
}
