package repositories

import (
	"database/sql"
	"errors"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain/models"
)

type VanRepository struct {
	DB *sql.DB
}

func (r VanRepository) Create(size string, ownerID int64) (models.Van, error) {
	res, err := r.DB.Exec(`INSERT INTO vans (size, owner_id) VALUES (?, ?)`, size, ownerID)
	if err != nil {
		return models.Van{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Van{}, domain.InternalError{Err: err}
	}
	return models.Van{ID: id, Size: size, OwnerID: ownerID}, nil
}

func (r VanRepository) GetByID(id int64) (models.Van, error) {
	var v models.Van
	err := r.DB.QueryRow(`SELECT id, size, owner_id FROM vans WHERE id = ?`, id).
		Scan(&v.ID, &v.Size, &v.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Van{}, domain.NotFoundError{Resource: "van", Err: err}
		}
		return models.Van{}, domain.InternalError{Err: err}
	}
	return v, nil
}

func (r VanRepository) List() ([]models.Van, error) {
	rows, err := r.DB.Query(`SELECT id, size, owner_id FROM vans ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Van{}
	for rows.Next() {
		var v models.Van
		if err := rows.Scan(&v.ID, &v.Size, &v.OwnerID); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
