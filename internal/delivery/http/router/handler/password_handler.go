package handler

import (
	"net/http"

	"authgate/internal/delivery/http/response"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type resetTokenRequest struct {
	Email string `json:"email" form:"email" validate:"required"`
}

type updatePasswordRequest struct {
	Email       string `json:"email" form:"email" validate:"required"`
	ResetToken  string `json:"reset_token" form:"reset_token" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,max=72"`
}

type resetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// PasswordHandler runs the password reset flow.
type PasswordHandler struct {
	uc usecase.AuthUsecase
}

func NewPasswordHandler(uc usecase.AuthUsecase) *PasswordHandler {
	return &PasswordHandler{uc: uc}
}

// ResetToken handles POST /reset_password. Unknown emails get 403.
func (h *PasswordHandler) ResetToken(c echo.Context) error {
	var req resetTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.uc.GetResetPasswordToken(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resetTokenResponse{Email: req.Email, ResetToken: token}, "")
}

// UpdatePassword handles PUT /reset_password. Invalid tokens get 403.
func (h *PasswordHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), &usecase.UpdatePasswordInput{
		Email:       req.Email,
		ResetToken:  req.ResetToken,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": req.Email}, "Password updated")
}
