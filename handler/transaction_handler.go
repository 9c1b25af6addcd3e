package handler

import (
	"net/http"
	"strconv"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	dashboardService   *service.DashboardService
	logger             zerolog.Logger
}

func NewTransactionHandler(
	transactionService *service.TransactionService,
	dashboardService *service.DashboardService,
	logger zerolog.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		dashboardService:   dashboardService,
		logger:             logger,
	}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.transactionService.List())
}

// Add handles POST /api/transactions
func (h *TransactionHandler) Add(c *gin.Context) {
	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid transaction.", err)
		return
	}

	txn, err := h.transactionService.Add(&req)
	if err != nil {
		sendError(c, h.logger, http.StatusBadRequest, err.Error(), nil)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// Import handles POST /api/transactions/import. The body is the JSON array
// returned by /api/upload.
func (h *TransactionHandler) Import(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		sendError(c, h.logger, http.StatusBadRequest, MsgInvalidData, err)
		return
	}

	txns, err := h.transactionService.ImportRaw(string(body))
	if err != nil {
		sendError(c, h.logger, http.StatusBadRequest, MsgInvalidData, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: len(txns), Transactions: txns})
}

// Dashboard handles GET /api/dashboard?monthlyIncome=
func (h *TransactionHandler) Dashboard(c *gin.Context) {
	var income float64
	if v := c.Query("monthlyIncome"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			sendError(c, h.logger, http.StatusBadRequest, "monthlyIncome must be a positive number.", nil)
			return
		}
		income = parsed
	}

	c.JSON(http.StatusOK, h.dashboardService.Summary(income))
}
