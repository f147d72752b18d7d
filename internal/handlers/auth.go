package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/services"
	"github.com/aijalabs/aija-backend/pkg/clientip"
	"github.com/aijalabs/aija-backend/pkg/utils"
)

func generateDeviceToken() string {
	b := make([]byte, 24)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Token   string                 `json:"token,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
}

// CheckUsername reports whether a username is valid and still available.
func CheckUsername(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success":   false,
			"available": false,
			"message":   err.Error(),
		})
		return
	}

	exists, err := services.UsernameExists(utils.NormalizeUsername(req.Username))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"available": !exists,
		"username":  req.Username,
		"message":   map[bool]string{true: "Username is available", false: "Username is already taken"}[!exists],
	})
}

// Signup registers a new account and opens a session.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		writeMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}
	if len(req.Password) < 8 {
		writeMessage(w, http.StatusBadRequest, false, "Password must be at least 8 characters")
		return
	}

	username := utils.NormalizeUsername(req.Username)

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Failed to hash password")
		return
	}

	userID, err := services.CreateUser(username, hashedPassword)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			writeMessage(w, http.StatusConflict, false, "Username is already taken")
			return
		}
		writeMessage(w, http.StatusInternalServerError, false, "Failed to create user")
		return
	}

	token, err := services.CreateSession(r.Context(), userID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		Token:   token,
		User: map[string]interface{}{
			"id":       userID.String(),
			"username": username,
		},
	})
}

// Signin verifies credentials and opens a fresh session.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "Username and password are required")
		return
	}

	user, err := services.GetUserByUsername(utils.NormalizeUsername(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, false, "Database error")
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		writeMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
		return
	}

	token, err := services.CreateSession(r.Context(), user.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Failed to create session")
		return
	}

	// Best-effort device tracking for support; errors never block login.
	services.RecordDevice(user.ID, generateDeviceToken(), clientip.RealClientIP(r), r.UserAgent())

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User: map[string]interface{}{
			"id":         user.ID.String(),
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
			"created_at": user.CreatedAt,
		},
	})
}

// Refresh extends the caller's session another 7 days. Clients call this on
// app open so an active user is never signed out mid-streak.
func Refresh(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}
	if err := services.RefreshSession(r.Context(), token); err != nil {
		writeMessage(w, http.StatusUnauthorized, false, "Session expired. Please sign in again.")
		return
	}
	writeMessage(w, http.StatusOK, true, "Session refreshed")
}

// Signout invalidates the caller's session token.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}
	if err := services.InvalidateSession(r.Context(), token); err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Failed to sign out")
		return
	}
	writeMessage(w, http.StatusOK, true, "Signed out")
}

// Me returns the authenticated user's profile.
func Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	user, err := services.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, false, "User not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, false, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "OK",
		User: map[string]interface{}{
			"id":         user.ID.String(),
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
			"created_at": user.CreatedAt,
		},
	})
}
