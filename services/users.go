package services

import (
	"context"
	"errors"

	"github.com/Jugal-Chanda/demo-CICD-github/models"
	"github.com/Jugal-Chanda/demo-CICD-github/repository"
	"github.com/Jugal-Chanda/demo-CICD-github/validation"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
)

type UserService interface {
	ListUsers(ctx context.Context, query models.ListUsersQuery) ([]models.User, *models.Pagination, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, payload models.UserPayload) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, payload models.UserPayload) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	BulkCreateUsers(ctx context.Context, payloads []models.UserPayload) *models.BulkCreateResult
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ListUsers validates the sort parameters, fills defaults, and returns
// one page plus its pagination metadata. A page past the last one is not
// an error: it yields an empty slice with accurate metadata.
func (s *userService) ListUsers(ctx context.Context, query models.ListUsersQuery) ([]models.User, *models.Pagination, error) {
	if query.Page < 1 {
		query.Page = DefaultPage
	}
	if query.PerPage < 1 {
		query.PerPage = DefaultPerPage
	}
	if query.PerPage > MaxPerPage {
		query.PerPage = MaxPerPage
	}
	if query.SortBy == "" {
		query.SortBy = DefaultSortBy
	}
	if query.SortOrder == "" {
		query.SortOrder = DefaultSortOrder
	}

	if !repository.SortColumns[query.SortBy] {
		return nil, nil, validation.NewError(models.CodeValidationError, "sort_by",
			"sort_by must be one of: id, name, email, age, created_at, updated_at")
	}
	if query.SortOrder != "asc" && query.SortOrder != "desc" {
		return nil, nil, validation.NewError(models.CodeValidationError, "sort_order",
			"sort_order must be either asc or desc")
	}

	users, total, err := s.repo.FindPage(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	return users, models.NewPagination(query.Page, query.PerPage, total), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateUser runs the ordered field validation, then the uniqueness
// check, then inserts. The insert still maps a unique violation to the
// conflict sentinel, which covers the window between check and insert.
func (s *userService) CreateUser(ctx context.Context, payload models.UserPayload) (*models.User, error) {
	if err := validation.ValidateUserPayload(&payload); err != nil {
		return nil, err
	}
	exists, err := s.repo.ExistsByEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateEmail
	}
	return s.repo.Insert(ctx, payload)
}

// UpdateUser is a whole-record replace with the same validation as
// create. A duplicate check only fires when the email actually belongs
// to a different record.
func (s *userService) UpdateUser(ctx context.Context, id int64, payload models.UserPayload) (*models.User, error) {
	if err := validation.ValidateUserPayload(&payload); err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Email != current.Email {
		exists, err := s.repo.ExistsByEmail(ctx, payload.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repository.ErrDuplicateEmail
		}
	}
	return s.repo.Replace(ctx, id, payload)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// BulkCreateUsers processes every entry independently: one entry's
// failure never aborts the rest, and the result carries both counts and
// the per-entry errors.
func (s *userService) BulkCreateUsers(ctx context.Context, payloads []models.UserPayload) *models.BulkCreateResult {
	result := &models.BulkCreateResult{
		Users: make([]models.User, 0, len(payloads)),
	}
	for i, payload := range payloads {
		user, err := s.CreateUser(ctx, payload)
		if err != nil {
			code, field := classifyError(err)
			result.Failed++
			result.Errors = append(result.Errors, models.BulkCreateError{
				Index: i,
				Error: publicErrorMessage(err),
				Code:  code,
				Field: field,
			})
			continue
		}
		result.Created++
		result.Users = append(result.Users, *user)
	}
	return result
}

// classifyError maps a service error to its envelope code and field.
func classifyError(err error) (code, field string) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return vErr.Code, vErr.Field
	case errors.Is(err, repository.ErrDuplicateEmail):
		return models.CodeDuplicateEmail, "email"
	case errors.Is(err, repository.ErrNotFound):
		return models.CodeNotFound, ""
	default:
		return models.CodeInternalError, ""
	}
}

// publicErrorMessage hides storage detail behind a generic message while
// expected errors keep their precise text.
func publicErrorMessage(err error) string {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, repository.ErrDuplicateEmail):
		return "Email already exists"
	case errors.Is(err, repository.ErrNotFound):
		return "User not found"
	default:
		return "Internal server error"
	}
}
