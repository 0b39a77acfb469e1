package dto

// UpdateRoleRequest sets the account role used by the dashboard's
// role gate.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin coordinator staff volunteer"`
}
