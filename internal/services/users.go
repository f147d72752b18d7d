package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/database"
	"github.com/aijalabs/aija-backend/internal/models"
)

// CreateUser inserts a new account row and returns its ID.
func CreateUser(username, passwordHash string) (uuid.UUID, error) {
	userID := uuid.New()
	_, err := database.PostgresDB.Exec(`
		INSERT INTO users (id, username, password_hash, created_at, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
	`, userID, username, passwordHash, time.Now().UTC())
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return uuid.Nil, fmt.Errorf("%w: username already taken", apperrors.ErrConflict)
		}
		return uuid.Nil, err
	}
	return userID, nil
}

// GetUserByUsername loads an active account by username, case-insensitive.
// Returns ErrNotFound when no such account exists.
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, password_hash, COALESCE(avatar_url, ''), created_at
		FROM users WHERE LOWER(username) = LOWER($1) AND is_active = TRUE
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID loads an active account by ID.
func GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, password_hash, COALESCE(avatar_url, ''), created_at
		FROM users WHERE id = $1 AND is_active = TRUE
	`, userID).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether any active account holds the username.
func UsernameExists(username string) (bool, error) {
	var exists bool
	err := database.PostgresDB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1) AND is_active = TRUE)
	`, username).Scan(&exists)
	return exists, err
}

// RecordDevice upserts a device row for support purposes. Tracking failures
// are the caller's choice to ignore; they never block login.
func RecordDevice(userID uuid.UUID, deviceToken, ipAddress, userAgent string) error {
	_, err := database.PostgresDB.Exec(`
		INSERT INTO user_devices (id, user_id, device_token, ip_address, user_agent, last_used, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (device_token) DO UPDATE SET
			user_id = $1,
			last_used = NOW(),
			ip_address = $3,
			user_agent = $4
	`, userID, deviceToken, ipAddress, userAgent)
	return err
}

// SetAvatarURL updates the user's avatar to an uploaded image URL.
func SetAvatarURL(userID uuid.UUID, url string) error {
	res, err := database.PostgresDB.Exec(`
		UPDATE users SET avatar_url = $1 WHERE id = $2 AND is_active = TRUE
	`, url, userID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
