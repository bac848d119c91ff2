package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerVoucherRoutes(v1, services.Voucher)
	registerReportingRoutes(v1, services.Reporting)
}
