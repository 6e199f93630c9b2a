package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crucial707/auth-dashboard/internal/models"
	"github.com/crucial707/auth-dashboard/internal/repo"
)

// ==========================
// UserHandler (read-only directory)
// ==========================
type UserHandler struct {
	Repo *repo.UserRepo
}

// ==========================
// List Users (every row, newest first, provenance flag set)
// ==========================
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.List(r.Context())
	if err != nil {
		slog.Error("users: list failed", "error", err)
		JSONError(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	formatted := make([]models.DirectoryUser, 0, len(users))
	for _, u := range users {
		formatted = append(formatted, u.Directory())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"users":   formatted,
	})
}
