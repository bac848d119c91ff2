package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
)

// ledgerHandler serves account statements. Registered under /accounts/:id.
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

func (h *ledgerHandler) accountLedger(c *gin.Context) {
	from, ok := parseDateQuery(c, "fromDate", time.Time{})
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "toDate", time.Time{})
	if !ok {
		return
	}

	ledger, err := h.ledgerService.AccountLedger(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}
