// Package user provides the HTTP endpoints for the account lifecycle:
// sign-up, sign-in, and withdrawal.
package user

import "microboard/internal/domain/entity"

// DTO is the public projection of an account. The password hash never leaves
// the server.
type DTO struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func toDTO(u *entity.User) DTO {
	return DTO{Email: u.Email, Username: u.Username}
}

// TokenDTO is the sign-in projection.
type TokenDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
