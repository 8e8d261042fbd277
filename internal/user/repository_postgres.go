package user

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Profile, error) {
	var p Profile
	var email, fullName, phone sql.NullString
	err := r.db.QueryRow(`SELECT user_id, email, full_name, phone, profile_completed, is_admin
        FROM profiles WHERE user_id = $1`, id).
		Scan(&p.UserID, &email, &fullName, &phone, &p.ProfileCompleted, &p.IsAdmin)
	if err == sql.ErrNoRows {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	p.Email = email.String
	p.FullName = fullName.String
	p.Phone = phone.String
	return p, nil
}
