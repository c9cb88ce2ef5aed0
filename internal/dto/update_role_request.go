// File: internal/dto/update_role_request.go
package dto

// swagger:model dto.UpdateRoleRequest
type UpdateRoleRequest struct {
	Role string `form:"role" validate:"required,oneof=admin user" example:"admin"`
}
