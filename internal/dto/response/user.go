package response

import (
	"time"

	"campus-events/internal/data/entity"
	"campus-events/pkg/utils"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Avatar    string          `json:"avatar"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    utils.AvatarInitial(user.Username),
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
