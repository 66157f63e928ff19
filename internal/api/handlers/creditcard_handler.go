package handlers

import (
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreditCardHandler struct {
	cardService *service.CreditCardService
	logger      *zap.Logger
}

func NewCreditCardHandler(cardService *service.CreditCardService, logger *zap.Logger) *CreditCardHandler {
	return &CreditCardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// MonthlySummary godoc
// @Summary Credit card spend/repay rollup
// @Description Per-card spend, repayment, and balance for one month; every allow-listed card appears
// @Tags creditcards
// @Produce json
// @Param userId path string true "User ID"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} dto.CreditCardSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /api/creditcards/summary/{userId} [get]
func (h *CreditCardHandler) MonthlySummary(c *fiber.Ctx) error {
	userID, err := parseUserParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	month := c.QueryInt("month")
	year := c.QueryInt("year")

	resp, err := h.cardService.MonthlySummary(c.Context(), userID, month, year)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to compute card summary")
	}

	return c.JSON(resp)
}
