package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intdb "yogabooking/internal/db"
	"yogabooking/internal/domain"
	"yogabooking/internal/domain/models"
)

// CatalogRepo is the MySQL-backed catalog adapter. Every call is a
// single statement; the table carries no constraints beyond its key, so
// the store keeps none of the booking invariants.
type CatalogRepo struct {
	DB *sql.DB
}

func (r CatalogRepo) EnsureSchema() error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(r.DB, "classes") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS classes (
	id VARCHAR(64) PRIMARY KEY,
	class_type VARCHAR(100) NOT NULL DEFAULT '',
	class_date VARCHAR(100) NOT NULL DEFAULT '',
	class_time VARCHAR(50) NOT NULL DEFAULT '',
	duration INT NOT NULL DEFAULT 0,
	capacity INT NOT NULL DEFAULT 0,
	price DOUBLE NOT NULL DEFAULT 0,
	teacher_name VARCHAR(255) NOT NULL DEFAULT '',
	description TEXT,
	roster TEXT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

const classColumns = `id, class_type, class_date, class_time, duration, capacity, price, teacher_name, COALESCE(description, ''), COALESCE(roster, '')`

func (r CatalogRepo) GetClass(ctx context.Context, id string) (models.ClassRecord, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+classColumns+` FROM classes WHERE id=? LIMIT 1`, id)
	c, err := scanClass(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClassRecord{}, domain.NotFoundError{Resource: "class"}
		}
		return models.ClassRecord{}, domain.StoreError{Op: "catalog.get", Err: err}
	}
	return c, nil
}

func (r CatalogRepo) PutRoster(ctx context.Context, id string, roster []string) error {
	raw, err := json.Marshal(roster)
	if err != nil {
		return domain.StoreError{Op: "catalog.put_roster", Err: err}
	}
	res, err := r.DB.ExecContext(ctx, `UPDATE classes SET roster=? WHERE id=?`, string(raw), id)
	if err != nil {
		return domain.StoreError{Op: "catalog.put_roster", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// roster unchanged counts as 0 rows on MySQL, verify existence
		var exists string
		if err := r.DB.QueryRowContext(ctx, `SELECT id FROM classes WHERE id=? LIMIT 1`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NotFoundError{Resource: "class"}
			}
			return domain.StoreError{Op: "catalog.put_roster", Err: err}
		}
	}
	return nil
}

func (r CatalogRepo) ListClasses(ctx context.Context) ([]models.ClassRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+classColumns+` FROM classes ORDER BY class_date, class_time, id`)
	if err != nil {
		return nil, domain.StoreError{Op: "catalog.list", Err: err}
	}
	defer rows.Close()

	var out []models.ClassRecord
	for rows.Next() {
		c, err := scanClass(rows.Scan)
		if err != nil {
			return nil, domain.StoreError{Op: "catalog.list", Err: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError{Op: "catalog.list", Err: err}
	}
	return out, nil
}

func scanClass(scan func(dest ...any) error) (models.ClassRecord, error) {
	var c models.ClassRecord
	var rawRoster string
	if err := scan(
		&c.ID,
		&c.ClassType,
		&c.Date,
		&c.Time,
		&c.Duration,
		&c.Capacity,
		&c.Price,
		&c.TeacherName,
		&c.Description,
		&rawRoster,
	); err != nil {
		return models.ClassRecord{}, err
	}
	if rawRoster != "" {
		if err := json.Unmarshal([]byte(rawRoster), &c.Roster); err != nil {
			return models.ClassRecord{}, fmt.Errorf("decode roster for class %s: %w", c.ID, err)
		}
	}
	return c, nil
}
