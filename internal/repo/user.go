package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/auth-dashboard/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, created_at
	`

	user := &models.User{}
	var dbName sql.NullString

	err := r.DB.QueryRowContext(ctx, query, name, email, passwordHash).
		Scan(&user.ID, &dbName, &user.Email, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	user.Name = dbName.String
	return user, nil
}

// ==========================
// Exists By Email
// ==========================
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ==========================
// Get By Email
// ==========================
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	user := &models.User{}
	var dbName sql.NullString

	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &dbName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	user.Name = dbName.String
	return user, nil
}

// ==========================
// List Users (newest first)
// ==========================
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var dbName sql.NullString
		if err := rows.Scan(&u.ID, &dbName, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Name = dbName.String
		users = append(users, u)
	}

	return users, rows.Err()
}
