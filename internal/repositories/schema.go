package repositories

import "database/sql"

// EnsureSchema creates the tables on startup when missing, mirroring the
// frontend-dev friendly bootstrap the project has always shipped with.
// Production deployments can pre-create the tables instead.
func EnsureSchema(db *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(32) NOT NULL DEFAULT 'customer',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS vans (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			size VARCHAR(32) NOT NULL,
			owner_id BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_owner (owner_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			van_id BIGINT NOT NULL,
			status VARCHAR(32) NOT NULL,
			pickup_location VARCHAR(255) NOT NULL,
			dropoff_location VARCHAR(255) NOT NULL,
			scheduled_time VARCHAR(64) NOT NULL,
			van_size VARCHAR(32) NOT NULL,
			time_slot VARCHAR(64) NOT NULL,
			distance VARCHAR(64) NULL,
			duration_minutes INT NULL,
			toll DECIMAL(10,2) NULL,
			fare DECIMAL(10,2) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_user (user_id),
			KEY idx_van (van_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// nullIfEmpty stores optional strings as NULL instead of empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
