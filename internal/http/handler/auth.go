package handler

import (
	"errors"
	"fmt"
	"net/http"

	"taskboard/internal/core"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register = "POST /api/auth/register"
	Login    = "POST /api/auth/login"
)

type AuthHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
}

func NewAuthHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService) *AuthHandler {
	return &AuthHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             authService,
	}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	creds, err := h.decodeCredentials(r)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Registration failed",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	err = h.auth.Register(r.Context(), creds)
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusBadRequest
			resp.Message = "Username already exists"
		} else {
			resp.Message = "Registration failed"
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"username", creds.Username,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user registered",
		"username", creds.Username,
		"handler", Register,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "User registered successfully"}, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	creds, err := h.decodeCredentials(r)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Login failed",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		resp := Response{}
		var httpCode int
		switch {
		case errors.Is(err, core.ErrUserNotFound):
			httpCode = http.StatusNotFound
			resp.Message = "User not found"
		case errors.Is(err, core.ErrIncorrectPassword):
			httpCode = http.StatusUnauthorized
			resp.Message = "Incorrect password"
		default:
			httpCode = http.StatusInternalServerError
			resp.Message = "Login failed"
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"username", creds.Username,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user logged in",
		"user_id", session.User.ID,
		"handler", Login,
		"request_id", requestId)

	respond(h.logs, w, payload.NewLoginResponse(session), http.StatusOK, requestId)
}

func (h *AuthHandler) decodeCredentials(r *http.Request) (core.Credentials, error) {
	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		return core.Credentials{}, fmt.Errorf("invalid request payload: %w", err)
	}
	if err := req.Validate(); err != nil {
		return core.Credentials{}, fmt.Errorf("invalid request payload: %w", err)
	}
	return req.ToCoreCredentials(), nil
}
