package validators

import (
	"github.com/Ijadele/task-management/internal/constants"
	dto "github.com/Ijadele/task-management/internal/data_models"
	apperrors "github.com/Ijadele/task-management/internal/errors"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Email == "" || r.Password == "" {
		return apperrors.ErrCredentialsRequired
	}
	if r.Role != "" && !constants.Role(r.Role).Valid() {
		return apperrors.ErrInvalidRole
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" || r.Password == "" {
		return apperrors.ErrCredentialsRequired
	}
	return nil
}
