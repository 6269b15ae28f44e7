package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/core/ports"
)

// BudgetHandler handles HTTP requests for budgets. Routes are registered
// behind the pro-plan middleware.
type BudgetHandler struct {
	service ports.BudgetService
}

func NewBudgetHandler(service ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

type createBudgetRequest struct {
	Category string  `json:"category" validate:"required"`
	Limit    float64 `json:"limit"    validate:"required,gt=0"`
}

// List handles GET /api/budgets.
//
// @Summary      List the user's budgets
// @Tags         budgets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Budget
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/budgets [get]
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	budgets, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, budgets)
}

// Create handles POST /api/budgets.
//
// @Summary      Create a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBudgetRequest  true  "Budget details"
// @Success      201   {object}  domain.Budget
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/budgets [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.service.Create(c.Request().Context(), ports.CreateBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Limit:    req.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, budget)
}
