package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rewards-hub/backend/internal/application/usecase/user"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
	"github.com/rewards-hub/backend/internal/integration/entrypoint/dto"
)

// birthdateLayouts are the accepted wire formats for the birthdate field.
var birthdateLayouts = []string{"2006-01-02", time.RFC3339}

// UserController handles user account endpoints.
type UserController struct {
	createUserUseCase     *user.CreateUserUseCase
	authenticateUseCase   *user.AuthenticateUserUseCase
	changePasswordUseCase *user.ChangePasswordUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUserUseCase *user.CreateUserUseCase,
	authenticateUseCase *user.AuthenticateUserUseCase,
	changePasswordUseCase *user.ChangePasswordUseCase,
) *UserController {
	return &UserController{
		createUserUseCase:     createUserUseCase,
		authenticateUseCase:   authenticateUseCase,
		changePasswordUseCase: changePasswordUseCase,
	}
}

// Register handles POST /user/register requests.
// Every failure on this endpoint is reported as 400 with a human-readable
// message; a missing field short-circuits before the use case runs.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.RegisterResponse{
			Success: false,
			Message: "All fields are required",
		})
		return
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.RegisterResponse{
			Success: false,
			Message: "Invalid birthdate format, expected YYYY-MM-DD",
		})
		return
	}

	input := user.CreateUserInput{
		Username:  req.Username,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Birthdate: birthdate,
	}

	output, err := c.createUserUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.RegisterResponse{
			Success: false,
			Message: errorMessage(err),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: "User created successfully",
		User:    dto.ToUserResponse(output.User),
	})
}

// Login handles POST /user/login requests.
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "All fields are required",
		})
		return
	}

	input := user.AuthenticateUserInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.authenticateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.ToUserResponse(output.User),
	})
}

// ChangePassword handles POST /user/change-password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "All fields are required",
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{
			Success: false,
			Message: "Invalid user id",
		})
		return
	}

	input := user.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	output, err := c.changePasswordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: output.Success,
		Message: output.Message,
	})
}

// handleUserError maps domain errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	ctx.JSON(statusCodeForUserError(err), dto.MessageResponse{
		Success: false,
		Message: errorMessage(err),
	})
}

// statusCodeForUserError maps user error codes to HTTP status codes.
func statusCodeForUserError(err error) int {
	var userErr *domainerror.UserError
	if !errors.As(err, &userErr) {
		return http.StatusBadRequest
	}

	switch userErr.Code {
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeIncorrectPassword:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// errorMessage extracts the human-readable message from a domain error.
func errorMessage(err error) string {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	return err.Error()
}

// parseBirthdate parses the birthdate field, accepting a plain date or a
// full RFC 3339 timestamp.
func parseBirthdate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range birthdateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
