package handler

import (
	"net/http"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TaxHandler serves the GST and income tax calculators. It is stateless.
type TaxHandler struct {
	logger zerolog.Logger
}

func NewTaxHandler(logger zerolog.Logger) *TaxHandler {
	return &TaxHandler{logger: logger}
}

// GST handles POST /api/tax/gst. An explicit rate wins; otherwise the
// category's table rate is used, falling back to 18% for unknown labels.
func (h *TaxHandler) GST(c *gin.Context) {
	var req dto.GSTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "amount must be a positive number.", err)
		return
	}

	rate := utils.DefaultGSTRate
	switch {
	case req.Rate != nil:
		if !dto.ValidGSTRate(*req.Rate) {
			sendError(c, h.logger, http.StatusBadRequest, "rate must be one of 0, 5, 12, 18, 28.", nil)
			return
		}
		rate = *req.Rate
	case req.Category != "":
		if r, ok := utils.GSTRateFor(req.Category); ok {
			rate = r
		}
	}

	c.JSON(http.StatusOK, utils.ReverseGST(req.Amount, rate))
}

// GSTRates handles GET /api/tax/gst/rates
func (h *TaxHandler) GSTRates(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GSTRateTable())
}

// Liability handles POST /api/tax/liability
func (h *TaxHandler) Liability(c *gin.Context) {
	var profile dto.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid tax profile.", err)
		return
	}

	c.JSON(http.StatusOK, utils.EstimateTax(profile))
}

// Compare handles POST /api/tax/compare
func (h *TaxHandler) Compare(c *gin.Context) {
	var req dto.TaxCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid tax profile.", err)
		return
	}

	c.JSON(http.StatusOK, utils.CompareRegimes(dto.UserProfile{
		AnnualIncome:   req.AnnualIncome,
		Investments80C: req.Investments80C,
	}))
}
