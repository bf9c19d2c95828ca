package repositories

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

// Create inserts a user. A duplicate email maps to ConflictError via the
// MySQL 1062 error code.
func (r UserRepository) Create(name, email, passwordHash, role string) (models.User, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES (?, ?, ?, ?)`,
		name, email, passwordHash, role)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return models.User{}, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	return models.User{ID: id, Name: name, Email: email, Role: role}, nil
}

// GetByEmail returns the user and its password hash for credential checks.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = ?`, email).Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, "", domain.InternalError{Err: err}
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT id, name, email, role
		FROM users
		WHERE id = ?`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT id, name, email, role FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
