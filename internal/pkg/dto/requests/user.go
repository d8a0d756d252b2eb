package requests

type UpdateUserStatus struct {
	IsActive bool `json:"is_active"`
}
