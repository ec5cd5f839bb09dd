package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/Jugal-Chanda/demo-CICD-github/models"
)

func setupMockDB(t *testing.T) (UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	cleanup := func() { _ = db.Close() }
	return NewUserRepository(db), mock, cleanup
}

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at", "updated_at"}).
		AddRow(1, "Jane Smith", "jane@example.com", 25, now, now)
}

func TestInsertUser(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	age := 25
	mock.
		ExpectQuery(`INSERT INTO users \(name, email, age\)`).
		WithArgs("Jane Smith", "jane@example.com", sqlmock.AnyArg()).
		WillReturnRows(userRows(now))

	user, err := repo.Insert(context.Background(), models.UserPayload{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Age:   &age,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
	if user.Age == nil || *user.Age != 25 {
		t.Fatalf("expected age 25, got %v", user.Age)
	}
	if user.UpdatedAt.Before(user.CreatedAt) {
		t.Fatal("expected updated_at >= created_at")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestInsertUserDuplicateEmail(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`INSERT INTO users \(name, email, age\)`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Insert(context.Background(), models.UserPayload{
		Name:  "Jane Smith",
		Email: "jane@example.com",
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestInsertUserNullAge(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.
		ExpectQuery(`INSERT INTO users \(name, email, age\)`).
		WithArgs("Jane Smith", "jane@example.com", nil).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at", "updated_at"}).
				AddRow(2, "Jane Smith", "jane@example.com", nil, now, now),
		)

	user, err := repo.Insert(context.Background(), models.UserPayload{
		Name:  "Jane Smith",
		Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if user.Age != nil {
		t.Fatalf("expected nil age, got %v", *user.Age)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT id, name, email, age, created_at, updated_at FROM users WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFindPageOrdersBySortColumnAndID(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.
		ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.
		ExpectQuery(`SELECT id, name, email, age, created_at, updated_at FROM users ORDER BY name ASC, id ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 10).
		WillReturnRows(userRows(now))

	users, total, err := repo.FindPage(context.Background(), models.ListUsersQuery{
		Page:      2,
		PerPage:   10,
		SortBy:    "name",
		SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 12 {
		t.Fatalf("expected total 12, got %d", total)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFindPageDefaultsToDescending(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.
		ExpectQuery(`ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at", "updated_at"}))

	users, total, err := repo.FindPage(context.Background(), models.ListUsersQuery{
		Page:      1,
		PerPage:   10,
		SortBy:    "created_at",
		SortOrder: "desc",
	})
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total 0, got %d", total)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(users))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestReplaceUserNotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`UPDATE users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Replace(context.Background(), 42, models.UserPayload{
		Name:  "Jane Smith",
		Email: "jane@example.com",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestExistsByEmail(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE email = \$1\)`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
