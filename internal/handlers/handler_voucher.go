package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherService
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherService) {
	h := &voucherHandler{voucherService: voucherService}

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.postVoucher)
		vouchers.POST("/validate", h.validateVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucher)
		vouchers.POST("/:id/reverse", h.reverseVoucher)
	}
}

func (h *voucherHandler) postVoucher(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	voucher, err := h.voucherService.PostVoucher(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// validateVoucher runs the posting checks without committing anything, so a
// client can give live feedback while the voucher is still being written.
func (h *voucherHandler) validateVoucher(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.voucherService.Validate(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ValidateVoucherResponse{Valid: true})
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	params := dto.ListVouchersParams{}
	if typeParam := c.Query("type"); typeParam != "" {
		params.VoucherType = &typeParam
	}
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	page, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

type reverseVoucherRequest struct {
	UpdatedBy string `json:"updatedBy" binding:"required"`
}

func (h *voucherHandler) reverseVoucher(c *gin.Context) {
	var req reverseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	voucher, err := h.voucherService.ReverseVoucher(c.Request.Context(), c.Param("id"), req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}
