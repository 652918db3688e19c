package apimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	if r.OldPassword == "" || r.NewPassword == "" {
		return errors.New("Old password and new password are required")
	}
	if len(r.NewPassword) < 4 {
		return errors.New("New password must be at least 4 characters long")
	}
	return nil
}

// AdminErrorResponse is the admin endpoints' error envelope: {"success":false,"error":"..."}.
type AdminErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewAdminError(message string) AdminErrorResponse {
	return AdminErrorResponse{Success: false, Error: message}
}

type AdminCheckResponse struct {
	Ok bool `json:"ok"`
}
