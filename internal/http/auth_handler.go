package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookjourney/internal/auth"
	"bookjourney/internal/entity"
	"bookjourney/internal/httpx"
	"bookjourney/internal/usecase"
)

type AuthHandler struct {
	users  usecase.UserRepository
	tokens *auth.TokenManager
}

func NewAuthHandler(users usecase.UserRepository, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

type registerReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates a new account. A taken username is reported as 400,
// matching the contract the frontend relies on.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":   validationErrors[0].Message,
			"details": validationErrors,
		})
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	newUser := &entity.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
	}
	if err := h.users.Create(r.Context(), newUser); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.Error(w, http.StatusBadRequest, "Username already exists")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.Message(w, http.StatusCreated, "Registered successfully")
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues a session token. Unknown users
// and wrong passwords get the same 401 response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": user.Username,
	})
}
