package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service  ports.UserService
	maxLimit int
}

func NewUserHandler(service ports.UserService, maxLimit int) *UserHandler {
	return &UserHandler{service: service, maxLimit: maxLimit}
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {array}   userResponse
// @Header       200    {string}  Link  "first/prev/next/last pagination links"
// @Failure      401    {object}  map[string]any
// @Failure      403    {object}  map[string]any
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	p := listParams(c, h.maxLimit)
	users, total, err := h.service.List(c.Request().Context(), p.Page, p.Limit)
	if err != nil {
		return err
	}

	writeLinkHeader(c, p, total)

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /users/:uid where uid is an id or an email.
//
// @Summary      Get a user by id or email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User id or email"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /users/{uid} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), domain.ParseUserKey(c.Param("uid")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /users — open registration.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Registration data"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PATCH /users/:uid. The patch is decoded field by field so
// unknown keys are rejected instead of silently dropped.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string          true  "User id or email"
// @Param        body  body      map[string]any  true  "Subset of email/password/role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /users/{uid} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var in ports.UpdateUserInput
	for field, value := range raw {
		var dst **string
		switch field {
		case "email":
			dst = &in.Email
		case "password":
			dst = &in.Password
		case "role":
			dst = &in.Role
		default:
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown field %q", field))
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a string", field))
		}
		*dst = &s
	}

	actor, ok := ctxIdentity(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	user, err := h.service.Update(c.Request().Context(), actor, domain.ParseUserKey(c.Param("uid")), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /users/:uid.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User id or email"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /users/{uid} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), domain.ParseUserKey(c.Param("uid"))); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
