package controllers

import (
	"errors"
	"net/http"

	"catering-api/models"
	"catering-api/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// Register godoc
// @Summary Register new account
// @Description Register a new customer account; a verification email is sent
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register/ [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	payload, err := ctrl.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Registration failed", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful. Please verify your email address",
		Data:    payload,
	})
}

// Login godoc
// @Summary Account login
// @Description Login with email and password; the account must be verified
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/login/ [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	payload, err := ctrl.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid credentials"})
		case errors.Is(err, services.ErrNotVerified):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Success: false, Message: "Account is not verified"})
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Login failed", Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    payload,
	})
}

// Verify godoc
// @Summary Verify email address
// @Description Verify an account using the emailed token
// @Tags Authentication
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/verify/ [get]
func (ctrl *AuthController) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Missing token"})
		return
	}

	alreadyVerified, err := ctrl.svc.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid or expired token"})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Account not found"})
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		}
		return
	}

	if alreadyVerified {
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Email already verified and activated"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Email successfully verified"})
}

// RegenerateToken godoc
// @Summary Re-send verification email
// @Description Generate a fresh verification token for an unverified account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/regenerate-token/ [post]
func (ctrl *AuthController) RegenerateToken(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Please input email", Error: err.Error()})
		return
	}

	err := ctrl.svc.RegenerateToken(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Email not found. Please register first"})
		case errors.Is(err, services.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Account already verified"})
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "A new verification token has been sent to your email"})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchange a valid refresh token for a new access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh/ [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Refresh token is needed", Error: err.Error()})
		return
	}

	access, err := ctrl.svc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Token refreshed",
		Data:    gin.H{"access": access},
	})
}

// Logout godoc
// @Summary Logout
// @Description Revoke the refresh token
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/logout/ [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Refresh token is needed", Error: err.Error()})
		return
	}

	if err := ctrl.svc.Logout(c.Request.Context(), req.Refresh); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Successfully logged out"})
}

// ResetPassword godoc
// @Summary Request password reset
// @Description Send a password reset token to a verified account's email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password/ [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Email is required", Error: err.Error()})
		return
	}

	if err := ctrl.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, services.ErrNotVerified) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Account is not verified"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "If the email exists, a password reset link has been sent",
	})
}

// ConfirmPasswordReset godoc
// @Summary Confirm password reset
// @Description Set a new password using the emailed reset token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ConfirmPasswordResetRequest true "Reset payload"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/confirm-password-reset/ [post]
func (ctrl *AuthController) ConfirmPasswordReset(c *gin.Context) {
	var req models.ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Missing fields", Error: err.Error()})
		return
	}

	err := ctrl.svc.ConfirmPasswordReset(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid or expired token"})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Account does not exist"})
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Password reset successful"})
}
