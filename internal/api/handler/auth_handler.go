package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pharmaplus/pharmacy-system/internal/api/metrics"
	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

const (
	actionLogin    = "login"
	actionRegister = "register"
)

type authRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// authUser is the public projection returned to clients: never the hash,
// never the raw role string — just an isAdmin flag.
type authUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	IsAdmin  bool   `json:"isAdmin"`
}

type authResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token,omitempty"`
	User    *authUser `json:"user,omitempty"`
}

func publicUser(u *domain.User) *authUser {
	return &authUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.Name,
		IsAdmin:  u.IsAdmin(),
	}
}

// Handle dispatches the action-based auth endpoint.
//
// @Summary      Login or register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authRequest  true  "Auth action payload"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      401   {object}  authResponse
// @Failure      409   {object}  authResponse
// @Failure      500   {object}  authResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Handle(c echo.Context) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusBadRequest, authResponse{Message: "content-type must be application/json"})
	}

	var req authRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Message: "invalid payload"})
	}

	switch req.Action {
	case "":
		return c.JSON(http.StatusBadRequest, authResponse{Message: "action is required"})
	case actionLogin:
		return h.login(c, req)
	case actionRegister:
		return h.register(c, req)
	default:
		return c.JSON(http.StatusOK, authResponse{Message: "invalid action"})
	}
}

func (h *AuthHandler) login(c echo.Context, req authRequest) error {
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, authResponse{Message: "email and password are required"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Unknown email and wrong password share this message on purpose.
			return c.JSON(http.StatusUnauthorized, authResponse{Message: "invalid email or password"})
		case errors.Is(err, domain.ErrMissingJWTSecret):
			return c.JSON(http.StatusInternalServerError, authResponse{Message: "server configuration error"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    publicUser(user),
	})
}

func (h *AuthHandler) register(c echo.Context, req authRequest) error {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, authResponse{Message: "fullName, email and password are required"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, authResponse{Message: "user with this email already exists"})
		}
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "registration successful, please login",
		User:    publicUser(user),
	})
}
