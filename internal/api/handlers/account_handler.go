package handlers

import (
	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AccountHandler struct {
	acctService *service.AccountService
	logger      *zap.Logger
}

func NewAccountHandler(acctService *service.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		acctService: acctService,
		logger:      logger,
	}
}

// Get godoc
// @Summary Get the month's account
// @Description Returns the balance record for (user, monthYear), creating it with zero balances on first read
// @Tags accounts
// @Produce json
// @Param userId path string true "User ID"
// @Param monthYear path string true "Month in YYYY-MM format"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string
// @Router /api/accounts/{userId}/{monthYear} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	resp, err := h.acctService.GetOrCreate(c.Context(), userID, c.Params("monthYear"))
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to load account")
	}

	return c.JSON(resp)
}

// Put godoc
// @Summary Set the month's balances
// @Description Writes starting and current balance, creating the record when missing
// @Tags accounts
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param monthYear path string true "Month in YYYY-MM format"
// @Param request body dto.UpdateAccountRequest true "Balances"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string
// @Router /api/accounts/{userId}/{monthYear} [put]
func (h *AccountHandler) Put(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.acctService.Put(c.Context(), userID, c.Params("monthYear"), &req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update account")
	}

	return c.JSON(resp)
}

// PatchBalance godoc
// @Summary Update the current balance
// @Description Adjusts only the running balance; the month's record must already exist
// @Tags accounts
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param monthYear path string true "Month in YYYY-MM format"
// @Param request body dto.UpdateBalanceRequest true "Current balance"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string
// @Router /api/accounts/{userId}/{monthYear}/balance [patch]
func (h *AccountHandler) PatchBalance(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var req dto.UpdateBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.acctService.PatchCurrentBalance(c.Context(), userID, c.Params("monthYear"), req.CurrentBalance)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update balance")
	}

	return c.JSON(resp)
}
