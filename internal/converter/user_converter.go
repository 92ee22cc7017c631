package converter

import (
	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		switch user.RoleID {
		case entity.RoleIDAdmin:
			role = entity.RoleAdmin
		default:
			role = entity.RoleClient
		}
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
