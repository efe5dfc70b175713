package response

import "campus-events/internal/data/entity"

type AuthResponse struct {
	Token          string `json:"token"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	SRN            string `json:"srn,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	SRN            string `json:"srn,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           string(user.Role),
		SRN:            user.SRN,
		ProfilePicture: user.ProfilePicture,
	}
}
