package userdemoserver

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	usermapper "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/http/mapper"
	userapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application"
	usertypes "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application/types"
	userdomain "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
	userports "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/ports"
	"github.com/qa-sandbox/go-demo-user-api/internal/shared/apierrors"
	"github.com/qa-sandbox/go-demo-user-api/internal/shared/timestamp"
)

// UsersAPI wires HTTP transport with the users bounded context service.
type UsersAPI struct {
	service userports.Service
}

// NewUsersAPI creates a UsersAPI backed by the provided service.
func NewUsersAPI(service userports.Service) UsersAPI {
	return UsersAPI{service: service}
}

// Support points consumers of the demo payloads at the hosted docs.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// DefaultSupport returns the support block attached to list and get payloads.
func DefaultSupport() Support {
	return Support{
		URL:  "https://reqres.in/#support-heading",
		Text: "Demo API for exercising HTTP clients and test tooling",
	}
}

// CreateUserRequest is the create body. Both fields are mandatory.
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Job  string `json:"job" binding:"required"`
}

// UpdateUserRequest is the update body. Absent fields echo back as unchanged.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Job  *string `json:"job"`
}

// DeleteUserRequest carries the id to delete in the body, not the path.
type DeleteUserRequest struct {
	ID *float64 `json:"id" binding:"required"`
}

// UserPageResponse is one pagination window over the store.
type UserPageResponse struct {
	Page       float64           `json:"page"`
	PerPage    float64           `json:"per_page"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Data       []usermapper.User `json:"data"`
	Support    Support           `json:"support"`
}

// UserListResponse is the unpaginated full collection.
type UserListResponse struct {
	Total int               `json:"total"`
	Data  []usermapper.User `json:"data"`
}

// UserResponse is a single record lookup.
type UserResponse struct {
	Data    usermapper.User `json:"data"`
	Support Support         `json:"support"`
}

// CreatedUserResponse echoes the submitted fields, not the derived record.
type CreatedUserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Job       string `json:"job"`
	CreatedAt string `json:"createdAt"`
}

// UpdatedUserResponse is the canned update echo.
type UpdatedUserResponse struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt"`
}

// Get /api/users
// List users
// @Summary List users in pagination windows
// @Tags users
// @Produce json
// @Param page query number false "1-based window index"
// @Param per_page query number false "Window size"
// @Success 200 {object} UserPageResponse
// @Failure 400 {object} apierrors.Error "Invalid pagination parameters"
// @Router /api/users [get]
func (api *UsersAPI) ListUsers(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		apierrors.Respond(c, apierrors.Validation("Invalid pagination parameters"))
		return
	}
	page, err := api.service.ListUsers(c.Request.Context(), query)
	if err != nil {
		respondUsersError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserPageResponse{
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Data:       usermapper.FromDomainUsers(page.Users),
		Support:    DefaultSupport(),
	})
}

// Get /api/users/all
// List the full collection
// @Summary List every user without pagination
// @Tags users
// @Produce json
// @Success 200 {object} UserListResponse
// @Router /api/users/all [get]
func (api *UsersAPI) ListAllUsers(c *gin.Context) {
	users, err := api.service.ListAllUsers(c.Request.Context())
	if err != nil {
		respondUsersError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserListResponse{
		Total: len(users),
		Data:  usermapper.FromDomainUsers(users),
	})
}

// Get /api/users/:id
// Get a single user
// @Summary Fetch one user by id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} UserResponse
// @Failure 404 {object} apierrors.Error "User not found"
// @Router /api/users/{id} [get]
func (api *UsersAPI) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.NotFound("User not found"))
		return
	}
	user, err := api.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUsersError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserResponse{
		Data:    usermapper.FromDomainUser(user),
		Support: DefaultSupport(),
	})
}

// Post /api/users
// Create a user
// @Summary Create a user and append the derived record to the store
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "Name and job"
// @Success 201 {object} CreatedUserResponse
// @Failure 400 {object} apierrors.Error "Missing or invalid field"
// @Router /api/users [post]
func (api *UsersAPI) CreateUser(c *gin.Context) {
	var payload CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.Validation(createBindMessage(err)))
		return
	}
	input := usertypes.CreateUserInput{Name: payload.Name, Job: payload.Job}
	created, err := api.service.CreateUser(c.Request.Context(), input)
	if err != nil {
		respondCreateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedUserResponse{
		ID:        created.ID,
		Name:      created.Name,
		Job:       created.Job,
		CreatedAt: timestamp.Format(created.CreatedAt),
	})
}

// Put /api/users/:id
// Update a user
// @Summary Echo an update without mutating the stored record
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body UpdateUserRequest false "Optional name and job"
// @Success 200 {object} UpdatedUserResponse
// @Failure 400 {object} apierrors.Error "Invalid field"
// @Failure 404 {object} apierrors.Error "User not found"
// @Router /api/users/{id} [put]
func (api *UsersAPI) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.NotFound("User not found"))
		return
	}
	var payload UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		api.respondUpdateBindError(c, id, err)
		return
	}
	input := usertypes.UpdateUserInput{ID: id, Name: payload.Name, Job: payload.Job}
	echo, err := api.service.UpdateUser(c.Request.Context(), input)
	if err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdatedUserResponse{
		Name:      echo.Name,
		Job:       echo.Job,
		UpdatedAt: timestamp.Format(echo.UpdatedAt),
	})
}

// Delete /api/users
// Delete a user by body id
// @Summary Delete every record matching the body id
// @Tags users
// @Accept json
// @Param user body DeleteUserRequest true "Id to delete"
// @Success 204 "Deleted"
// @Failure 400 {object} apierrors.Error "Missing or invalid id"
// @Failure 404 {object} apierrors.Error "User not found"
// @Router /api/users [delete]
func (api *UsersAPI) DeleteUser(c *gin.Context) {
	var payload DeleteUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.Validation("Missing or invalid id"))
		return
	}
	id, ok := integerID(payload.ID)
	if !ok {
		apierrors.Respond(c, apierrors.Validation("Missing or invalid id"))
		return
	}
	if err := api.service.DeleteUser(c.Request.Context(), usertypes.DeleteUserInput{ID: id}); err != nil {
		respondUsersError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseListQuery(c *gin.Context) (usertypes.ListUsersQuery, error) {
	query := usertypes.ListUsersQuery{
		Page:    usertypes.DefaultPage,
		PerPage: usertypes.DefaultPerPage,
	}
	if raw := c.Query("page"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, err
		}
		query.Page = value
	}
	if raw := c.Query("per_page"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, err
		}
		query.PerPage = value
	}
	return query, nil
}

// integerID accepts only integral JSON numbers. Values at or beyond the
// int64 range resolve to an id that matches no record.
func integerID(value *float64) (int64, bool) {
	if value == nil {
		return 0, false
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, false
	}
	if v >= math.MaxInt64 || v <= math.MinInt64 {
		return 0, true
	}
	return int64(v), true
}

// Existence wins over body validation for updates.
func (api *UsersAPI) respondUpdateBindError(c *gin.Context, id int64, bindErr error) {
	if _, err := api.service.GetUser(c.Request.Context(), id); errors.Is(err, userports.ErrNotFound) {
		apierrors.Respond(c, apierrors.NotFound("User not found"))
		return
	}
	apierrors.Respond(c, apierrors.Validation(updateBindMessage(bindErr)))
}

func createBindMessage(err error) string {
	switch bindErrorField(err) {
	case "name":
		return "Missing or invalid name"
	case "job":
		return "Missing or invalid job"
	}
	if errors.Is(err, io.EOF) {
		return "Missing or invalid name"
	}
	return "Invalid request body"
}

func updateBindMessage(err error) string {
	switch bindErrorField(err) {
	case "name":
		return "Invalid name"
	case "job":
		return "Invalid job"
	}
	return "Invalid request body"
}

func respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userdomain.ErrInvalidName):
		apierrors.Respond(c, apierrors.Validation("Missing or invalid name"))
	case errors.Is(err, userdomain.ErrInvalidJob):
		apierrors.Respond(c, apierrors.Validation("Missing or invalid job"))
	default:
		respondUsersError(c, err)
	}
}

func respondUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userdomain.ErrInvalidName):
		apierrors.Respond(c, apierrors.Validation("Invalid name"))
	case errors.Is(err, userdomain.ErrInvalidJob):
		apierrors.Respond(c, apierrors.Validation("Invalid job"))
	default:
		respondUsersError(c, err)
	}
}

func respondUsersError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, userports.ErrNotFound):
		apierrors.Respond(c, apierrors.NotFound("User not found"))
	case errors.Is(err, userapp.ErrInvalidPagination):
		apierrors.Respond(c, apierrors.Validation("Invalid pagination parameters"))
	default:
		apierrors.RespondError(c, err)
	}
}
