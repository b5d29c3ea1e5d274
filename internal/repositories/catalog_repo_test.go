package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"yogabooking/internal/domain"
)

func classRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "class_type", "class_date", "class_time", "duration",
		"capacity", "price", "teacher_name", "description", "roster",
	})
}

func TestCatalogRepoGetClass(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM classes WHERE id=").
		WithArgs("c1").
		WillReturnRows(classRows().AddRow(
			"c1", "Flow Yoga", "Monday, 06/01/2025", "10:00", 60,
			20, 20.0, "Alice", "", `["a@b.com","c@d.com"]`,
		))

	repo := CatalogRepo{DB: db}
	class, err := repo.GetClass(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetClass error: %v", err)
	}
	if class.ClassType != "Flow Yoga" || class.Price != 20.0 {
		t.Fatalf("unexpected class: %+v", class)
	}
	if len(class.Roster) != 2 || class.Roster[0] != "a@b.com" {
		t.Fatalf("roster not decoded: %v", class.Roster)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogRepoGetClassNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM classes WHERE id=").
		WithArgs("ghost").
		WillReturnRows(classRows())

	repo := CatalogRepo{DB: db}
	_, err = repo.GetClass(context.Background(), "ghost")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogRepoPutRoster(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE classes SET roster=").
		WithArgs(`["x@y.com"]`, "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := CatalogRepo{DB: db}
	if err := repo.PutRoster(context.Background(), "c1", []string{"x@y.com"}); err != nil {
		t.Fatalf("PutRoster error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogRepoPutRosterMissingClass(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE classes SET roster=").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM classes WHERE id=").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := CatalogRepo{DB: db}
	err = repo.PutRoster(context.Background(), "ghost", []string{"x@y.com"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogRepoListClasses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM classes ORDER BY").
		WillReturnRows(classRows().
			AddRow("c1", "Flow Yoga", "d1", "10:00", 60, 20, 20.0, "Alice", "", "").
			AddRow("c2", "Aerial", "d2", "18:00", 45, 10, 15.0, "Bob", "", `[]`))

	repo := CatalogRepo{DB: db}
	classes, err := repo.ListClasses(context.Background())
	if err != nil {
		t.Fatalf("ListClasses error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	if classes[1].TeacherName != "Bob" {
		t.Fatalf("unexpected order: %+v", classes)
	}
}
