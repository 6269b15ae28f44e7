package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/api/metrics"
	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for expense tracking.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

type createExpenseRequest struct {
	Amount      float64  `json:"amount"      validate:"gte=0"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	AllergyTags []string `json:"allergyTags"`
	// Omitted means allergy-safe; purchases are assumed safe unless flagged.
	IsAllergySafe *bool `json:"isAllergySafe"`
}

type updateExpenseRequest struct {
	Amount        *float64  `json:"amount" validate:"omitempty,gte=0"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	AllergyTags   *[]string `json:"allergyTags"`
	IsAllergySafe *bool     `json:"isAllergySafe"`
}

// List handles GET /api/expenses.
//
// @Summary      List the user's expenses, most recent first
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Expense
// @Failure      401  {object}  map[string]string
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	expenses, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expenses)
}

// Create handles POST /api/expenses. Recording an expense also appends an
// activity feed entry.
//
// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExpenseRequest  true  "Expense details"
// @Success      201   {object}  domain.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	isAllergySafe := true
	if req.IsAllergySafe != nil {
		isAllergySafe = *req.IsAllergySafe
	}

	expense, err := h.service.Create(c.Request().Context(), ports.CreateExpenseInput{
		UserID:        userID,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		AllergyTags:   req.AllergyTags,
		IsAllergySafe: isAllergySafe,
	})
	if err != nil {
		return err
	}

	metrics.ExpensesCreatedTotal.WithLabelValues(expense.Category).Inc()
	metrics.ActivitiesCreatedTotal.WithLabelValues(domain.ActivityExpense).Inc()

	return c.JSON(http.StatusCreated, expense)
}

// Update handles PUT /api/expenses/:id. The creation date cannot be changed.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Expense id"
// @Param        body  body      updateExpenseRequest  true  "Fields to change"
// @Success      200   {object}  domain.Expense
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.service.Update(c.Request().Context(), userID, id, ports.ExpensePatch{
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		AllergyTags:   req.AllergyTags,
		IsAllergySafe: req.IsAllergySafe,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /api/expenses/:id. Activities derived from the
// expense remain in the feed.
//
// @Summary      Remove an expense
// @Tags         expenses
// @Security     BearerAuth
// @Param        id  path  int  true  "Expense id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
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
