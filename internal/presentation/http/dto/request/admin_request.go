package request

// SetUserRoleRequest represents an admin role-assignment request
type SetUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}
