package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"assetledger/config"
	"assetledger/middleware"
	"assetledger/models"
)

type AuthHandler struct {
	config *config.Config
	store  Store
	log    *zap.Logger
}

func NewAuthHandler(cfg *config.Config, store Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		config: cfg,
		store:  store,
		log:    log,
	}
}

// loginRequest names the tenant by name or id. An empty tenant means the
// default tenant.
type loginRequest struct {
	Tenant   string `json:"tenant,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

const minPasswordLength = 5

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ref := body.Tenant
	if ref == "" {
		ref = models.DefaultTenantName
	}
	tenant, err := h.store.FindTenant(r.Context(), ref)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.store.FindUserByUsername(r.Context(), tenant.ID, body.Username)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.log.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("tenant_id", user.TenantID))
	h.issueToken(w, user)
}

// issueToken sets the session cookie and returns the token with the user.
func (h *AuthHandler) issueToken(w http.ResponseWriter, user *models.User) {
	token, err := middleware.GenerateToken(user, h.config.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate token", zap.Error(err), zap.Uint("user_id", user.ID))
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// ChangePassword replaces the caller's password and clears the forced
// change flag. A fresh token is issued.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var body changePasswordRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.CurrentPassword)); err != nil {
		respondError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	if body.NewPassword != body.ConfirmPassword {
		respondError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}
	if len(body.NewPassword) < minPasswordLength {
		respondError(w, http.StatusBadRequest, "Password must be at least 5 characters")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("failed to hash password", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	user.PasswordHash = string(hashedPassword)
	user.MustChangePassword = false
	if err := h.store.SaveUser(r.Context(), user); err != nil {
		h.log.Error("failed to save password", zap.Error(err), zap.Uint("user_id", user.ID))
		respondError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	h.log.Info("password changed", zap.Uint("user_id", user.ID))
	h.issueToken(w, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
