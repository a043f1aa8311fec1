package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"assetledger/middleware"
	"assetledger/models"
	"assetledger/store"
)

const minUsernameLength = 3

type UserHandler struct {
	store Store
	log   *zap.Logger
}

func NewUserHandler(store Store, log *zap.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

// profileInput is what an admin may change on a user. Company and
// Department are the attribution fallback for users without history.
type profileInput struct {
	FullName   string      `json:"full_name"`
	Role       models.Role `json:"role"`
	Company    string      `json:"company"`
	Department string      `json:"department"`
}

func (in *profileInput) apply(u *models.User) error {
	if !in.Role.Valid() {
		return errors.New("invalid role")
	}
	u.FullName = in.FullName
	u.Role = in.Role
	u.Company = in.Company
	u.Department = in.Department
	return nil
}

type createUserRequest struct {
	profileInput
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	users, err := h.store.ListUsers(r.Context(), user.TenantID)
	if err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// Create adds a user to the admin's tenant. The initial password must be
// changed on first login.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetUserFromContext(r.Context())

	var body createUserRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body.Username) < minUsernameLength {
		respondError(w, http.StatusBadRequest, "Username must be at least 3 characters")
		return
	}
	if len(body.Password) < minPasswordLength {
		respondError(w, http.StatusBadRequest, "Password must be at least 5 characters")
		return
	}

	user := &models.User{
		TenantID:           admin.TenantID,
		Username:           body.Username,
		MustChangePassword: true,
	}
	if err := body.apply(user); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.FindUserByUsername(r.Context(), admin.TenantID, body.Username); err == nil {
		respondError(w, http.StatusConflict, "Username already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("failed to hash password", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.PasswordHash = string(hashedPassword)

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "Username already exists")
			return
		}
		h.log.Error("failed to create user", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	h.log.Info("user created",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.Uint("admin_id", admin.ID),
	)
	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetUserFromContext(r.Context())

	id, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var body profileInput
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.store.GetUser(r.Context(), admin.TenantID, id)
	if err != nil {
		respondLookupError(w, h.log, err, "User not found")
		return
	}
	if user.ID == admin.ID && body.Role != models.RoleAdmin {
		respondError(w, http.StatusBadRequest, "Cannot remove your own admin role")
		return
	}
	if err := body.apply(user); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveUser(r.Context(), user); err != nil {
		h.log.Error("failed to update user", zap.Error(err), zap.Uint("user_id", id))
		respondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Delete removes a user who holds no assets. Admins cannot delete themselves.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetUserFromContext(r.Context())

	id, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if id == admin.ID {
		respondError(w, http.StatusBadRequest, "Cannot delete yourself")
		return
	}

	assets, err := h.store.ListAssets(r.Context(), admin.TenantID)
	if err != nil {
		h.log.Error("failed to list assets", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	for i := range assets {
		if assets[i].IsAssigned() && *assets[i].AssignedUserID == id {
			respondError(w, http.StatusConflict, "User still has assigned assets")
			return
		}
	}

	if err := h.store.DeleteUser(r.Context(), admin.TenantID, id); err != nil {
		respondLookupError(w, h.log, err, "User not found")
		return
	}

	h.log.Info("user deleted", zap.Uint("user_id", id), zap.Uint("admin_id", admin.ID))
	w.WriteHeader(http.StatusNoContent)
}
