package handler

import (
	"net/http"
	"time"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VoucherHandler holds dependencies for voucher-related handlers.
type VoucherHandler struct {
	uc usecase.VoucherUsecase
}

// NewVoucherHandler is the constructor for VoucherHandler, injected by Fx.
func NewVoucherHandler(uc usecase.VoucherUsecase) *VoucherHandler {
	return &VoucherHandler{uc: uc}
}

// voucherView is the wire shape of a voucher.
type voucherView struct {
	Code           string     `json:"code"`
	DiscountValue  float64    `json:"discountValue"`
	DiscountType   string     `json:"discountType"`
	ExpirationType string     `json:"expirationType"`
	Expiration     *time.Time `json:"expiration,omitempty"`
	Status         string     `json:"status"`
	UsedCount      int        `json:"usedCount"`
}

func toVoucherView(voucher *entity.Voucher) voucherView {
	view := voucherView{
		Code:           voucher.Code,
		DiscountValue:  voucher.DiscountValue,
		DiscountType:   voucher.DiscountType.String(),
		ExpirationType: voucher.ExpirationType.String(),
		Status:         voucher.Status.String(),
		UsedCount:      voucher.UsedCount,
	}
	if !voucher.Expiration.IsZero() {
		expiration := voucher.Expiration
		view.Expiration = &expiration
	}

	return view
}

// Generate handles the administrative voucher batch generation request.
func (h *VoucherHandler) Generate(c echo.Context) error {
	var input *usecase.GenerateVouchersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher generation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Generate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"codes": output.Codes}, "Vouchers generated successfully")
}

// Get handles the voucher lookup request.
func (h *VoucherHandler) Get(c echo.Context) error {
	voucher, err := h.uc.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVoucherView(voucher), "Voucher retrieved successfully")
}

// Redeem handles the voucher redemption request.
func (h *VoucherHandler) Redeem(c echo.Context) error {
	var input *usecase.RedeemVoucherInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	input.Code = c.Param("code")
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.uc.Redeem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"code":       application.Code,
		"discount":   application.Discount,
		"totalAfter": application.TotalAfter,
		"redeemedAt": application.RedeemedAt,
		"voucher":    toVoucherView(application.Voucher),
	}, "Voucher redeemed successfully")
}

// Revert handles the redemption compensation request.
func (h *VoucherHandler) Revert(c echo.Context) error {
	input := &usecase.RevertVoucherInput{Code: c.Param("code")}

	voucher, err := h.uc.Revert(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVoucherView(voucher), "Voucher redemption reverted successfully")
}

// QRCode handles the printable voucher QR request.
func (h *VoucherHandler) QRCode(c echo.Context) error {
	png, err := h.uc.QRCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
