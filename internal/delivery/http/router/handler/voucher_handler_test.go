package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVoucherTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder, *mockUsecase.MockVoucherUsecase, *VoucherHandler) {
	t.Helper()

	uc := mockUsecase.NewMockVoucherUsecase(t)
	handler := &VoucherHandler{uc: uc}

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec, uc, handler
}

func TestVoucherHandler_Get(t *testing.T) {
	c, rec, uc, handler := newVoucherTestContext(t, http.MethodGet, "")
	c.SetParamNames("code")
	c.SetParamValues("SUMMER2026AAAA00")

	uc.EXPECT().Get(mock.Anything, "SUMMER2026AAAA00").Return(&entity.Voucher{
		Code:           "SUMMER2026AAAA00",
		DiscountValue:  5,
		DiscountType:   entity.DiscountAmount,
		ExpirationType: entity.ExpirationOneTime,
		Status:         entity.VoucherValid,
	}, nil)

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "SUMMER2026AAAA00")
	assert.Contains(t, responseBody, `"discountType":"AMOUNT"`)
	assert.Contains(t, responseBody, `"status":"VALID"`)
	// A voucher without a deadline must not expose a zero timestamp.
	assert.NotContains(t, responseBody, "expiration")
}

func TestVoucherHandler_Generate(t *testing.T) {
	body := `{"count":2,"discountValue":5,"discountType":"AMOUNT","expirationType":"ONETIME"}`
	c, rec, uc, handler := newVoucherTestContext(t, http.MethodPost, body)

	uc.EXPECT().Generate(mock.Anything, mock.AnythingOfType("*usecase.GenerateVouchersInput")).
		Return(&usecase.GenerateVouchersOutput{Codes: []string{"CODEAAAA00000001", "CODEAAAA00000002"}}, nil)

	require.NoError(t, handler.Generate(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "CODEAAAA00000001")
	assert.Contains(t, rec.Body.String(), "CODEAAAA00000002")
}

func TestVoucherHandler_Generate_RejectsMissingCount(t *testing.T) {
	body := `{"discountValue":5,"discountType":"AMOUNT","expirationType":"ONETIME"}`
	c, _, _, handler := newVoucherTestContext(t, http.MethodPost, body)

	// Validation fails before the usecase is reached.
	err := handler.Generate(c)
	require.Error(t, err)
}

func TestVoucherHandler_Redeem(t *testing.T) {
	body := `{"orderTotal":20}`
	c, rec, uc, handler := newVoucherTestContext(t, http.MethodPost, body)
	c.SetParamNames("code")
	c.SetParamValues("CODEAAAA00000001")

	redeemedAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().Redeem(mock.Anything, mock.AnythingOfType("*usecase.RedeemVoucherInput")).
		RunAndReturn(func(_ context.Context, input *usecase.RedeemVoucherInput) (*usecase.DiscountApplication, error) {
			// The code comes from the path, not the body.
			assert.Equal(t, "CODEAAAA00000001", input.Code)
			assert.InDelta(t, 20.0, input.OrderTotal, 1e-9)

			return &usecase.DiscountApplication{
				Code:       input.Code,
				Discount:   5,
				TotalAfter: 15,
				Voucher: &entity.Voucher{
					Code:           input.Code,
					DiscountValue:  5,
					DiscountType:   entity.DiscountAmount,
					ExpirationType: entity.ExpirationOneTime,
					Status:         entity.VoucherExpired,
					UsedCount:      1,
				},
				RedeemedAt: redeemedAt,
			}, nil
		})

	require.NoError(t, handler.Redeem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"discount":5`)
	assert.Contains(t, responseBody, `"totalAfter":15`)
	assert.Contains(t, responseBody, `"status":"EXPIRED"`)
}

func TestVoucherHandler_Redeem_RejectsMissingOrderTotal(t *testing.T) {
	body := `{"orderTotal":0}`
	c, _, _, handler := newVoucherTestContext(t, http.MethodPost, body)
	c.SetParamNames("code")
	c.SetParamValues("CODEAAAA00000001")

	err := handler.Redeem(c)
	require.Error(t, err)
}

func TestVoucherHandler_QRCode(t *testing.T) {
	c, rec, uc, handler := newVoucherTestContext(t, http.MethodGet, "")
	c.SetParamNames("code")
	c.SetParamValues("CODEAAAA00000001")

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().QRCode(mock.Anything, "CODEAAAA00000001").Return(png, nil)

	require.NoError(t, handler.QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
