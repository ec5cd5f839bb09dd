package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jugal-Chanda/demo-CICD-github/models"
	"github.com/Jugal-Chanda/demo-CICD-github/services"
)

// UserHandler handles the user resource endpoints.
type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// parseListQuery normalizes the pagination parameters. Non-numeric or
// out-of-range values fall back to defaults; sort parameters pass
// through untouched and are validated by the service.
func parseListQuery(c *gin.Context) models.ListUsersQuery {
	page := services.DefaultPage
	if parsed, err := strconv.Atoi(strings.TrimSpace(c.Query("page"))); err == nil && parsed >= 1 {
		page = parsed
	}

	perPage := services.DefaultPerPage
	if parsed, err := strconv.Atoi(strings.TrimSpace(c.Query("per_page"))); err == nil && parsed >= 1 {
		perPage = parsed
	}
	if perPage > services.MaxPerPage {
		perPage = services.MaxPerPage
	}

	return models.ListUsersQuery{
		Page:      page,
		PerPage:   perPage,
		SortBy:    strings.TrimSpace(c.Query("sort_by")),
		SortOrder: strings.ToLower(strings.TrimSpace(c.Query("sort_order"))),
	}
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, "Invalid user ID", "id"))
		return 0, false
	}
	return id, true
}

// ListUsers returns one page of users with pagination metadata.
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := parseListQuery(c)

	users, pagination, err := h.userService.ListUsers(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ListResponse(users, len(users), pagination))
}

// GetUser returns a single user by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse("", user))
}

// CreateUser validates and persists a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload models.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse("User created successfully", user))
}

// UpdateUser replaces the whole record identified by id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var payload models.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse("User updated successfully", user))
}

// DeleteUser removes the record permanently.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse("User deleted successfully", nil))
}

// BulkCreateUsers processes a batch of create payloads with best-effort
// semantics: the response reports created/failed counts, the created
// records, and per-entry errors.
func (h *UserHandler) BulkCreateUsers(c *gin.Context) {
	var req models.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if len(req.Users) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeMissingRequiredField, "users is required", "users"))
		return
	}

	result := h.userService.BulkCreateUsers(c.Request.Context(), req.Users)

	response := models.SuccessResponse(
		fmt.Sprintf("Created %d of %d users", result.Created, len(req.Users)),
		result,
	)
	c.JSON(http.StatusCreated, response)
}
