package repository

import (
	"context"
	"database/sql"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/Jugal-Chanda/demo-CICD-github/models"
)

// Pinger is the connectivity probe consumed by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UserRepository is the storage contract for user records. Handlers and
// services depend on this interface only, so tests substitute an
// in-memory fake without touching a real database.
type UserRepository interface {
	Pinger
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindPage(ctx context.Context, query models.ListUsersQuery) ([]models.User, int64, error)
	Insert(ctx context.Context, payload models.UserPayload) (*models.User, error)
	Replace(ctx context.Context, id int64, payload models.UserPayload) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SortColumns whitelists the scalar columns the list operation may order
// by. Anything else is rejected before SQL is built.
var SortColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"age":        true,
	"created_at": true,
	"updated_at": true,
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const (
	userColumns = "id, name, email, age, created_at, updated_at"

	sqlInsertUser = `INSERT INTO users (name, email, age)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	sqlReplaceUser = `UPDATE users
		SET name = $1, email = $2, age = $3
		WHERE id = $4
		RETURNING ` + userColumns

	sqlFindUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	sqlDeleteUser = `DELETE FROM users WHERE id = $1`

	sqlCountUsers = `SELECT COUNT(*) FROM users`

	sqlExistsByEmail = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
)

func (r *postgresUserRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return pkgerrors.Wrap(err, "ping database")
	}
	return nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, sqlFindUserByID, id)
	return scanUser(row)
}

func (r *postgresUserRepository) FindPage(ctx context.Context, query models.ListUsersQuery) ([]models.User, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, sqlCountUsers).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	sortBy := query.SortBy
	if !SortColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if query.SortOrder == "asc" {
		direction = "ASC"
	}

	// Tie-break on id in the same direction so pages stay stable when
	// the sort column has duplicate values.
	listSQL := fmt.Sprintf(
		`SELECT %s FROM users ORDER BY %s %s, id %s LIMIT $1 OFFSET $2`,
		userColumns, sortBy, direction, direction,
	)

	rows, err := r.db.QueryContext(ctx, listSQL, query.PerPage, query.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0, query.PerPage)
	for rows.Next() {
		var (
			u   models.User
			age sql.NullInt64
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &age, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, pkgerrors.Wrap(err, "scan user row")
		}
		if age.Valid {
			value := int(age.Int64)
			u.Age = &value
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}
	return users, total, nil
}

func (r *postgresUserRepository) Insert(ctx context.Context, payload models.UserPayload) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, sqlInsertUser, payload.Name, payload.Email, nullableAge(payload.Age))
	return scanUser(row)
}

func (r *postgresUserRepository) Replace(ctx context.Context, id int64, payload models.UserPayload) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, sqlReplaceUser, payload.Name, payload.Email, nullableAge(payload.Age), id)
	return scanUser(row)
}

func (r *postgresUserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, sqlDeleteUser, id)
	if err != nil {
		return mapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return pkgerrors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, sqlExistsByEmail, email).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func nullableAge(age *int) sql.NullInt64 {
	if age == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*age), Valid: true}
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u   models.User
		age sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &age, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	if age.Valid {
		value := int(age.Int64)
		u.Age = &value
	}
	return &u, nil
}
