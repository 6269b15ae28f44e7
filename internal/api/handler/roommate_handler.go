package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/core/ports"
)

// RoommateHandler handles HTTP requests for roommates.
type RoommateHandler struct {
	service ports.RoommateService
}

func NewRoommateHandler(service ports.RoommateService) *RoommateHandler {
	return &RoommateHandler{service: service}
}

type createRoommateRequest struct {
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"omitempty,email"`
	Avatar string `json:"avatar" validate:"max=1"`
}

type updateRoommateRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"  validate:"omitempty,email"`
	Avatar *string `json:"avatar" validate:"omitempty,max=1"`
}

// List handles GET /api/roommates.
//
// @Summary      List the user's roommates
// @Tags         roommates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Roommate
// @Failure      401  {object}  map[string]string
// @Router       /api/roommates [get]
func (h *RoommateHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	roommates, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roommates)
}

// Create handles POST /api/roommates.
//
// @Summary      Add a roommate
// @Tags         roommates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoommateRequest  true  "Roommate details"
// @Success      201   {object}  domain.Roommate
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/roommates [post]
func (h *RoommateHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createRoommateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roommate, err := h.service.Create(c.Request().Context(), ports.CreateRoommateInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, roommate)
}

// Update handles PUT /api/roommates/:id.
//
// @Summary      Update a roommate
// @Tags         roommates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Roommate id"
// @Param        body  body      updateRoommateRequest  true  "Fields to change"
// @Success      200   {object}  domain.Roommate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/roommates/{id} [put]
func (h *RoommateHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRoommateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roommate, err := h.service.Update(c.Request().Context(), userID, id, ports.RoommatePatch{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roommate)
}

// Delete handles DELETE /api/roommates/:id. Existing bill splits keep the
// removed roommate's id among their participants.
//
// @Summary      Remove a roommate
// @Tags         roommates
// @Security     BearerAuth
// @Param        id  path  int  true  "Roommate id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/roommates/{id} [delete]
func (h *RoommateHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
