package access

import "gangosri-portal/internal/pkg/constvars"

type MenuEntry struct {
	Label string
	Path  string
	// Icon is the SVG path data rendered inline by the layout template.
	Icon         string
	AllowedRoles []string
}

// menuEntries mirrors the sidebar of the original portal, in display order.
var menuEntries = []MenuEntry{
	{
		Label:        "Dashboard",
		Path:         constvars.PathDashboard,
		Icon:         "M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3m-6 0a1 1 0 001-1v-4a1 1 0 011-1h2a1 1 0 011 1v4a1 1 0 001 1m-6 0h6",
		AllowedRoles: constvars.AllRoles(),
	},
	{
		Label:        "Patients",
		Path:         constvars.PathPatients,
		Icon:         "M17 20h5v-2a3 3 0 00-5.356-1.857M17 20H7m10 0v-2c0-.656-.126-1.283-.356-1.857M7 20H2v-2a3 3 0 015.356-1.857M7 20v-2c0-.656.126-1.283.356-1.857m0 0a5.002 5.002 0 019.288 0M15 7a3 3 0 11-6 0 3 3 0 016 0zm6 3a2 2 0 11-4 0 2 2 0 014 0zM7 10a2 2 0 11-4 0 2 2 0 014 0z",
		AllowedRoles: []string{constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleNurse, constvars.RoleReceptionist},
	},
	{
		Label:        "Appointments",
		Path:         constvars.PathAppointments,
		Icon:         "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z",
		AllowedRoles: []string{constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleNurse, constvars.RoleReceptionist},
	},
	{
		Label:        "Consultation",
		Path:         constvars.PathConsultation,
		Icon:         "M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z",
		AllowedRoles: []string{constvars.RoleDoctor},
	},
	{
		Label:        "Prescriptions",
		Path:         constvars.PathPrescriptions,
		Icon:         "M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z",
		AllowedRoles: []string{constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleNurse},
	},
	{
		Label:        "Billing",
		Path:         constvars.PathBilling,
		Icon:         "M17 9V7a2 2 0 00-2-2H5a2 2 0 00-2 2v6a2 2 0 002 2h2m2 4h10a2 2 0 002-2v-6a2 2 0 00-2-2H9a2 2 0 00-2 2v6a2 2 0 002 2zm7-5a2 2 0 11-4 0 2 2 0 014 0z",
		AllowedRoles: []string{constvars.RoleAdmin, constvars.RoleReceptionist, constvars.RoleAccountant},
	},
	{
		Label:        "User Management",
		Path:         constvars.PathUserManagement,
		Icon:         "M12 4.354a4 4 0 110 5.292M15 21H3v-1a6 6 0 0112 0v1zm0 0h6v-1a6 6 0 00-9-5.197M13 7a4 4 0 11-8 0 4 4 0 018 0z",
		AllowedRoles: []string{constvars.RoleAdmin},
	},
}

// VisibleMenu returns the entries whose allow-list contains the role,
// preserving table order. Unknown roles get an empty menu, never an error.
func VisibleMenu(role string) []MenuEntry {
	visible := make([]MenuEntry, 0, len(menuEntries))
	for _, entry := range menuEntries {
		for _, allowed := range entry.AllowedRoles {
			if allowed == role {
				visible = append(visible, entry)
				break
			}
		}
	}
	return visible
}
