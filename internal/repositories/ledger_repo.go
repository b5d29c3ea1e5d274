package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	intdb "yogabooking/internal/db"
	"yogabooking/internal/domain"
	"yogabooking/internal/domain/models"
)

// LedgerRepo is the MySQL-backed booking ledger. Appends assign a fresh
// key; there is deliberately no unique index over (class_id, email) —
// duplicate prevention is the booking service's job.
type LedgerRepo struct {
	DB *sql.DB
}

func (r LedgerRepo) EnsureSchema() error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(r.DB, "bookings") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS bookings (
	booking_key VARCHAR(36) PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	class_id VARCHAR(64) NOT NULL,
	class_type VARCHAR(100) NOT NULL DEFAULT '',
	class_date VARCHAR(100) NOT NULL DEFAULT '',
	price DOUBLE NOT NULL DEFAULT 0,
	teacher_name VARCHAR(255) NOT NULL DEFAULT '',
	status VARCHAR(20) NOT NULL DEFAULT '',
	KEY idx_class_email (class_id, email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

func (r LedgerRepo) Append(ctx context.Context, rec models.BookingRecord) (string, error) {
	key := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings (booking_key, email, class_id, class_type, class_date, price, teacher_name, status)
		VALUES (?,?,?,?,?,?,?,?)`,
		key, rec.Email, rec.ClassID, rec.ClassType, rec.Date, rec.Price, rec.TeacherName, rec.Status,
	)
	if err != nil {
		return "", domain.StoreError{Op: "ledger.append", Err: err}
	}
	return key, nil
}

func (r LedgerRepo) ListBookings(ctx context.Context) ([]models.LedgerEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT booking_key, email, class_id, class_type, class_date, price, teacher_name, status
		FROM bookings`)
	if err != nil {
		return nil, domain.StoreError{Op: "ledger.list", Err: err}
	}
	defer rows.Close()

	var out []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(
			&e.Key,
			&e.Record.Email,
			&e.Record.ClassID,
			&e.Record.ClassType,
			&e.Record.Date,
			&e.Record.Price,
			&e.Record.TeacherName,
			&e.Record.Status,
		); err != nil {
			return nil, domain.StoreError{Op: "ledger.list", Err: err}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError{Op: "ledger.list", Err: err}
	}
	return out, nil
}

func (r LedgerRepo) Delete(ctx context.Context, key string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE booking_key=?`, key)
	if err != nil {
		return domain.StoreError{Op: "ledger.delete", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
