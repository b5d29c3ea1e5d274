package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "yogabooking/internal/db"
	"yogabooking/internal/domain"
	"yogabooking/internal/domain/models"
)

// CustomerRepo is the MySQL-backed profile store. Rows carry no unique
// key over (customer_key, class_id); the booking service checks for an
// existing entry before writing, first write wins.
type CustomerRepo struct {
	DB *sql.DB
}

func (r CustomerRepo) EnsureSchema() error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(r.DB, "customer_classes") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS customer_classes (
	customer_key VARCHAR(255) NOT NULL,
	class_id VARCHAR(64) NOT NULL,
	class_type VARCHAR(100) NOT NULL DEFAULT '',
	price DOUBLE NOT NULL DEFAULT 0,
	teacher_name VARCHAR(255) NOT NULL DEFAULT '',
	class_date VARCHAR(100) NOT NULL DEFAULT '',
	KEY idx_customer (customer_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

func (r CustomerRepo) PutClassEntry(ctx context.Context, customerKey, classID string, details models.ClassSummary) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO customer_classes (customer_key, class_id, class_type, price, teacher_name, class_date)
		VALUES (?,?,?,?,?,?)`,
		customerKey, classID, details.ClassType, details.Price, details.TeacherName, details.Date,
	)
	if err != nil {
		return domain.StoreError{Op: "profiles.put", Err: err}
	}
	return nil
}

func (r CustomerRepo) DeleteClassEntry(ctx context.Context, customerKey, classID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM customer_classes WHERE customer_key=? AND class_id=?`, customerKey, classID)
	if err != nil {
		return domain.StoreError{Op: "profiles.delete", Err: err}
	}
	return nil
}

func (r CustomerRepo) GetClassEntries(ctx context.Context, customerKey string) (map[string]models.ClassSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT class_id, class_type, price, teacher_name, class_date
		FROM customer_classes WHERE customer_key=?`, customerKey)
	if err != nil {
		return nil, domain.StoreError{Op: "profiles.get", Err: err}
	}
	defer rows.Close()

	out := map[string]models.ClassSummary{}
	for rows.Next() {
		var classID string
		var s models.ClassSummary
		if err := rows.Scan(&classID, &s.ClassType, &s.Price, &s.TeacherName, &s.Date); err != nil {
			return nil, domain.StoreError{Op: "profiles.get", Err: err}
		}
		// keep the earliest row when duplicates slipped past the service
		if _, ok := out[classID]; !ok {
			out[classID] = s
		}
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError{Op: "profiles.get", Err: err}
	}
	return out, nil
}
