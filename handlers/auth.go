package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskmanager/config"
	"taskmanager/models"
	"taskmanager/store"
	"taskmanager/utils"
)

type AuthHandler struct {
	users  store.UserStore
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

func NewAuthHandler(users store.UserStore, cfg *config.Config, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		log:    log,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user. The password is stored only as a bcrypt hash
// and no token is issued; the caller must log in separately.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.ResponseWithError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	if _, err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.ResponseWithError(w, http.StatusConflict, "User already exists")
			return
		}
		h.log.Error("signup failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	utils.ResponseWithJson(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// Login checks credentials and issues a time-limited bearer token carrying
// the user's id.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.ResponseWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.ResponseWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error("login failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error logging in", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.ResponseWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJwt(user.ID.Hex(), h.secret, h.ttl)
	if err != nil {
		h.log.Error("token generation failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error logging in", err)
		return
	}

	utils.ResponseWithJson(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}
