package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
)

// reportingHandler serves the derived statements. Every report is recomputed
// per request.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers the statement routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	from, ok := parseDateQuery(c, "fromDate", time.Time{})
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "toDate", time.Time{})
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}
