package handlers

import (
	"errors"
	"net/http"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/config"
	"github.com/aijalabs/aija-backend/internal/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinaryService builds the avatar upload service from config.
func InitCloudinaryService(cfg *config.Config) error {
	service, err := services.NewCloudinaryService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

type ProfileResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Profile map[string]interface{} `json:"profile,omitempty"`
}

// GetProfile returns the authenticated user's profile.
func GetProfile(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		Profile: map[string]interface{}{
			"id":         user.ID.String(),
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
			"created_at": user.CreatedAt,
		},
	})
}

// UploadAvatar accepts a multipart image (max 10MB), uploads it to
// Cloudinary, and stores the secure URL on the account.
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if cloudinaryService == nil {
		writeMessage(w, http.StatusInternalServerError, false, "Upload service not initialized")
		return
	}

	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid multipart form")
		return
	}

	_, fileHeader, err := r.FormFile("avatar")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "avatar file is required")
		return
	}

	url, err := cloudinaryService.UploadAvatar(r.Context(), fileHeader)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Failed to upload avatar")
		return
	}

	if err := services.SetAvatarURL(userID, url); err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Failed to save avatar")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		Message: "Avatar updated",
		Profile: map[string]interface{}{"avatar_url": url},
	})
}
