package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/api/metrics"
	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// BillSplitHandler handles HTTP requests for bill splitting.
type BillSplitHandler struct {
	service ports.BillSplitService
}

func NewBillSplitHandler(service ports.BillSplitService) *BillSplitHandler {
	return &BillSplitHandler{service: service}
}

// List handles GET /api/bill-splits. Splits the user created or participates
// in are returned, most recent first.
//
// @Summary      List the user's bill splits
// @Tags         billsplits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.BillSplitView
// @Failure      401  {object}  map[string]string
// @Router       /api/bill-splits [get]
func (h *BillSplitHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	splits, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, splits)
}

// Create handles POST /api/bill-splits. Creating a split also appends an
// activity entry carrying the creator's own share.
//
// @Summary      Create a bill split
// @Tags         billsplits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBillSplitRequest  true  "Split details"
// @Success      201   {object}  ports.BillSplitView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/bill-splits [post]
func (h *BillSplitHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createBillSplitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	split, err := h.service.Create(c.Request().Context(), ports.CreateBillSplitInput{
		CreatorID:     userID,
		Title:         req.Title,
		TotalAmount:   req.TotalAmount,
		Participants:  req.Participants,
		SplitType:     req.SplitType,
		CustomAmounts: req.CustomAmounts,
	})
	if err != nil {
		return err
	}

	metrics.BillSplitsCreatedTotal.WithLabelValues(split.SplitType).Inc()
	metrics.ActivitiesCreatedTotal.WithLabelValues(domain.ActivityBillSplit).Inc()

	return c.JSON(http.StatusCreated, split)
}

// Settle handles PUT /api/bill-splits/:id/settle. Settling is idempotent:
// repeating the call on an already-settled split succeeds without change.
//
// @Summary      Settle a bill split
// @Tags         billsplits
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Bill split id"
// @Success      200  {object}  settledResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/bill-splits/{id}/settle [put]
func (h *BillSplitHandler) Settle(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Settle(c.Request().Context(), userID, id); err != nil {
		return err
	}

	metrics.BillSplitsSettledTotal.Inc()

	return c.JSON(http.StatusOK, settledResponse{Message: "settled"})
}
