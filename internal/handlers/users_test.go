package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/auth-dashboard/internal/repo"
)

func TestUserHandler_ListUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, created_at\s+FROM users\s+ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow(2, "Bob", "bob@example.com", time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)).
			AddRow(1, nil, "alice@example.com", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}
	req := httptest.NewRequest("GET", "/api/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("ListUsers status: got %d, want 200", rr.Code)
	}
	var out struct {
		Success bool `json:"success"`
		Users   []struct {
			ID        int    `json:"id"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			CreatedAt string `json:"createdAt"`
			IsReal    bool   `json:"isReal"`
		} `json:"users"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success || len(out.Users) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Users[0].Name != "Bob" || out.Users[0].CreatedAt != "Feb 20, 2024" || !out.Users[0].IsReal {
		t.Errorf("unexpected first user: %+v", out.Users[0])
	}
	// NULL display name falls back to the placeholder.
	if out.Users[1].Name != "User" || out.Users[1].CreatedAt != "Jan 15, 2024" {
		t.Errorf("unexpected second user: %+v", out.Users[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_ListUsers_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, created_at`).
		WillReturnError(errFake)

	h := &UserHandler{Repo: repo.NewUserRepo(db)}
	req := httptest.NewRequest("GET", "/api/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("ListUsers status: got %d, want 500", rr.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["message"] != "Error fetching users" {
		t.Errorf("unexpected message: %q", out["message"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
