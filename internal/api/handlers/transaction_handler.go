package handlers

import (
	"strconv"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Create godoc
// @Summary Record a transaction
// @Description Create an income, expense, transfer, saving, or credit card payment record
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction fields"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.txService.Create(c.Context(), &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByUser godoc
// @Summary List a user's transactions
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions/user/{userId} [get]
func (h *TransactionHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	resp, err := h.txService.ListByUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to list transactions")
	}

	return c.JSON(resp)
}

// MonthlySummary godoc
// @Summary Monthly summary
// @Description Bucketed transactions, totals, category and needs/wants breakdowns, and goal progress for one month
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions/summary/{userId} [get]
func (h *TransactionHandler) MonthlySummary(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	month := c.QueryInt("month")
	year := c.QueryInt("year")

	resp, err := h.txService.MonthlySummary(c.Context(), userID, month, year)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to compute summary")
	}

	return c.JSON(resp)
}

// Search godoc
// @Summary Search transactions
// @Description Filtered, date-descending search with page-level totals
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Param search query string false "Free-text match on payee, remarks, or expense type"
// @Param type query string false "Exact transaction type"
// @Param expenseType query string false "Exact expense category"
// @Param needsWants query string false "Exact needs/wants class"
// @Param mode query string false "Partial payment mode"
// @Param payee query string false "Partial payee (ignored when search is set)"
// @Param startDate query string false "Inclusive start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end of day (RFC3339 or YYYY-MM-DD)"
// @Param minAmount query number false "Inclusive lower amount bound"
// @Param maxAmount query number false "Inclusive upper amount bound"
// @Param limit query int false "Result cap" default(100)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions/search/{userId} [get]
func (h *TransactionHandler) Search(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	expenseType := c.Query("expenseType")
	if expenseType == "" {
		// Older clients send the same filter as "category".
		expenseType = c.Query("category")
	}

	filter := models.SearchFilter{
		Search:      c.Query("search"),
		Type:        c.Query("type"),
		ExpenseType: expenseType,
		NeedsWants:  c.Query("needsWants"),
		Mode:        c.Query("mode"),
		Payee:       c.Query("payee"),
		StartDate:   parseQueryDate(c.Query("startDate")),
		EndDate:     parseQueryDate(c.Query("endDate")),
		MinAmount:   parseQueryAmount(c.Query("minAmount")),
		MaxAmount:   parseQueryAmount(c.Query("maxAmount")),
		Limit:       c.QueryInt("limit"),
	}

	resp, err := h.txService.Search(c.Context(), userID, filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to search transactions")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.CreateTransactionRequest true "Replacement fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.txService.Update(c.Context(), id, &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update transaction")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	if err := h.txService.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete transaction")
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}

func parseQueryDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}

func parseQueryAmount(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
