package constvars

// User roles as issued by the HIS backend. The access policy table in
// services/core/access is the only consumer allowed to branch on these.
const (
	RoleAdmin         = "ADMIN"
	RoleDoctor        = "DOCTOR"
	RoleNurse         = "NURSE"
	RoleReceptionist  = "RECEPTIONIST"
	RoleLabTechnician = "LAB_TECHNICIAN"
	RoleAccountant    = "ACCOUNTANT"
)

func AllRoles() []string {
	return []string{
		RoleAdmin,
		RoleDoctor,
		RoleNurse,
		RoleReceptionist,
		RoleLabTechnician,
		RoleAccountant,
	}
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
