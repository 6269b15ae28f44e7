package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/api/metrics"
	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// AllergyHandler handles HTTP requests for allergy tracking.
type AllergyHandler struct {
	service ports.AllergyService
}

func NewAllergyHandler(service ports.AllergyService) *AllergyHandler {
	return &AllergyHandler{service: service}
}

type createAllergyRequest struct {
	Name      string `json:"name"      validate:"required"`
	Severity  string `json:"severity"  validate:"required,oneof=mild moderate severe"`
	RiskLevel string `json:"riskLevel" validate:"required,oneof=low medium high"`
}

type updateAllergyRequest struct {
	Name      *string `json:"name"`
	Severity  *string `json:"severity"  validate:"omitempty,oneof=mild moderate severe"`
	RiskLevel *string `json:"riskLevel" validate:"omitempty,oneof=low medium high"`
}

// List handles GET /api/allergies.
//
// @Summary      List the user's allergies
// @Tags         allergies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Allergy
// @Failure      401  {object}  map[string]string
// @Router       /api/allergies [get]
func (h *AllergyHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	allergies, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, allergies)
}

// Create handles POST /api/allergies.
//
// @Summary      Add an allergy
// @Tags         allergies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAllergyRequest  true  "Allergy details"
// @Success      201   {object}  domain.Allergy
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/allergies [post]
func (h *AllergyHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createAllergyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	allergy, err := h.service.Create(c.Request().Context(), ports.CreateAllergyInput{
		UserID:    userID,
		Name:      req.Name,
		Severity:  req.Severity,
		RiskLevel: req.RiskLevel,
	})
	if err != nil {
		return err
	}

	// Severe allergies also land in the activity feed.
	if allergy.Severity == domain.SeveritySevere {
		metrics.ActivitiesCreatedTotal.WithLabelValues(domain.ActivityAllergyAlert).Inc()
	}

	return c.JSON(http.StatusCreated, allergy)
}

// Update handles PUT /api/allergies/:id.
//
// @Summary      Update an allergy
// @Tags         allergies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Allergy id"
// @Param        body  body      updateAllergyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Allergy
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/allergies/{id} [put]
func (h *AllergyHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAllergyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	allergy, err := h.service.Update(c.Request().Context(), userID, id, ports.AllergyPatch{
		Name:      req.Name,
		Severity:  req.Severity,
		RiskLevel: req.RiskLevel,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, allergy)
}

// Delete handles DELETE /api/allergies/:id.
//
// @Summary      Remove an allergy
// @Tags         allergies
// @Security     BearerAuth
// @Param        id  path  int  true  "Allergy id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/allergies/{id} [delete]
func (h *AllergyHandler) Delete(c echo.Context) error {
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
