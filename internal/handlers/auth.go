package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/crucial707/auth-dashboard/internal/metrics"
	"github.com/crucial707/auth-dashboard/internal/models"
	"github.com/crucial707/auth-dashboard/internal/repo"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the fixed lifetime of issued tokens. There is no revocation
// list; invalidation is by expiry only.
const TokenTTL = time.Hour

// bcryptCost is the moderate work factor used for password hashes.
const bcryptCost = 10

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo *repo.UserRepo
	Secret   []byte
}

// ==========================
// Register (no token issued; caller logs in separately)
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "Email and password required", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Password == "" {
		JSONError(w, "Email and password required", http.StatusBadRequest)
		return
	}

	exists, err := h.UserRepo.ExistsByEmail(r.Context(), input.Email)
	if err != nil {
		slog.Error("register: email lookup failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if exists {
		JSONError(w, "User already exists", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	name := input.Name
	if name == "" {
		name = models.DefaultName
	}

	if _, err := h.UserRepo.Create(r.Context(), name, input.Email, string(hash)); err != nil {
		// Concurrent registration can slip past the pre-check; the unique
		// index resolves it to the same client-visible error.
		if e, ok := err.(*pq.Error); ok && e.Code == "23505" {
			JSONError(w, "User already exists", http.StatusBadRequest)
			return
		}
		slog.Error("register: create user failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "User registered",
	})
}

// ==========================
// Login (email + password, bcrypt verified; HS256 token, 1h expiry)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Error("login: user lookup failed", "error", err)
			metrics.RecordLogin("error")
			JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
			return
		}
		metrics.RecordLogin("invalid_credentials")
		JSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		metrics.RecordLogin("invalid_credentials")
		JSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		metrics.RecordLogin("error")
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.RecordLogin("success")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"token":   signed,
		"user": map[string]string{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
