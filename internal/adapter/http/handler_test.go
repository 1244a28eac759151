package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charity/internal/config/configs"
	"charity/internal/core/domain"
	"charity/internal/core/port"
	"charity/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockDonationUseCase) {
	t.Helper()
	svc := mocks.NewMockDonationUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	site := configs.Site{Name: "Test Foundation", SecretKey: "test-secret"}
	return NewHandler(svc, logger, site, ""), svc
}

func testCampaign(id int64, title string) domain.Campaign {
	return domain.Campaign{
		ID:           id,
		Title:        title,
		Description:  "Helping families",
		GoalAmount:   decimal.NewFromInt(1_000_000),
		RaisedAmount: decimal.NewFromInt(250_000),
		Currency:     "NGN",
		IsActive:     true,
	}
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashFrom decodes the flash cookie set on rec.
func flashFrom(t *testing.T, h *Handler, rec *httptest.ResponseRecorder) *flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.Value != "" {
			req.AddCookie(c)
		}
	}
	return h.flash.pop(httptest.NewRecorder(), req)
}

func TestDonateRedirectsToGateway(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		Donate(mock.Anything, mock.MatchedBy(func(req port.DonationReq) bool {
			return req.CampaignID == 1 &&
				req.Amount.Equal(decimal.NewFromInt(5000)) &&
				req.Currency == "NGN" &&
				req.Email == "donor@example.com"
		})).
		Return(&port.DonationResp{
			TransactionID:    7,
			Reference:        "BSF_7_1700000000",
			AuthorizationURL: "https://checkout.paystack.com/abc",
		}, nil)

	rec := serve(h, postForm("/process-donation", url.Values{
		"campaign_id": {"1"},
		"amount":      {"5000"},
		"currency":    {"NGN"},
		"email":       {"donor@example.com"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://checkout.paystack.com/abc", rec.Header().Get("Location"))
}

func TestDonateCustomAmount(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		Donate(mock.Anything, mock.MatchedBy(func(req port.DonationReq) bool {
			return req.Amount.Equal(decimal.RequireFromString("250.50"))
		})).
		Return(&port.DonationResp{AuthorizationURL: "https://checkout.paystack.com/xyz"}, nil)

	rec := serve(h, postForm("/process-donation", url.Values{
		"campaign_id":   {"1"},
		"amount":        {"custom"},
		"custom_amount": {"250.50"},
		"currency":      {"USD"},
		"email":         {"donor@example.com"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://checkout.paystack.com/xyz", rec.Header().Get("Location"))
}

func TestDonateRejections(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		err      error
		location string
		message  string
	}{
		{"invalid amount", "NGN", port.ErrInvalidAmount, "/campaign/1", "Please enter a valid donation amount"},
		{"unsupported currency", "JPY", port.ErrUnsupportedCurrency, "/campaign/1", "Selected currency is not supported"},
		{"below minimum", "ngn", port.ErrBelowMinimum, "/campaign/1", "Minimum donation amount is ₦100.00"},
		{"below minimum usd", "USD", port.ErrBelowMinimum, "/campaign/1", "Minimum donation amount is $1.00"},
		{"missing email", "NGN", port.ErrMissingEmail, "/campaign/1", "Email address is required for donation receipt"},
		{"invalid email", "NGN", port.ErrInvalidEmail, "/campaign/1", "Please enter a valid email address"},
		{"unknown campaign", "NGN", port.ErrCampaignNotFound, "/campaigns", "Invalid campaign selected"},
		{
			"gateway failure", "NGN",
			&port.GatewayError{Message: "Payment service timeout. Please try again.", Err: errors.New("deadline exceeded")},
			"/donate/error", "Payment failed: Payment service timeout. Please try again.",
		},
		{"storage failure", "NGN", errors.New("connection reset"), "/donate/error", "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().Donate(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h, postForm("/process-donation", url.Values{
				"campaign_id": {"1"},
				"amount":      {"50"},
				"currency":    {tt.currency},
				"email":       {"donor@example.com"},
			}))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			f := flashFrom(t, h, rec)
			require.NotNil(t, f)
			assert.Equal(t, levelError, f.Level)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestDonateRejectsBadInputBeforeService(t *testing.T) {
	t.Run("non numeric amount", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, postForm("/process-donation", url.Values{
			"campaign_id": {"3"},
			"amount":      {"lots"},
			"email":       {"donor@example.com"},
		}))
		assert.Equal(t, "/campaign/3", rec.Header().Get("Location"))
		assert.Equal(t, "Please enter a valid donation amount", flashFrom(t, h, rec).Message)
	})

	t.Run("bad campaign id", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, postForm("/process-donation", url.Values{
			"campaign_id": {"abc"},
			"amount":      {"5000"},
		}))
		assert.Equal(t, "/campaigns", rec.Header().Get("Location"))
		assert.Equal(t, "Invalid campaign selected", flashFrom(t, h, rec).Message)
	})
}

func TestCallback(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().ConfirmPayment(mock.Anything, "BSF_7_1700000000").Return(&port.Receipt{}, nil)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/paystack/callback?reference=BSF_7_1700000000", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/donate/success/BSF_7_1700000000", rec.Header().Get("Location"))
		assert.Equal(t, levelSuccess, flashFrom(t, h, rec).Level)
	})

	t.Run("trxref fallback", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().ConfirmPayment(mock.Anything, "BSF_8_1700000000").Return(&port.Receipt{}, nil)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/paystack/callback?trxref=BSF_8_1700000000", nil))

		assert.Equal(t, "/donate/success/BSF_8_1700000000", rec.Header().Get("Location"))
	})

	t.Run("missing reference", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/paystack/callback", nil))

		assert.Equal(t, "/donate/error", rec.Header().Get("Location"))
		assert.Equal(t, "Invalid payment reference", flashFrom(t, h, rec).Message)
	})

	t.Run("not successful", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().ConfirmPayment(mock.Anything, "ref").
			Return(nil, &port.PaymentNotSuccessfulError{Reference: "ref", Status: "abandoned"})

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/paystack/callback?reference=ref", nil))

		assert.Equal(t, "/donate/error", rec.Header().Get("Location"))
		assert.Equal(t, "Payment was not successful. Please try again.", flashFrom(t, h, rec).Message)
	})

	t.Run("verification error", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().ConfirmPayment(mock.Anything, "ref").
			Return(nil, &port.GatewayError{Message: "Payment verification timeout"})

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/paystack/callback?reference=ref", nil))

		assert.Equal(t, "Payment verification failed: Payment verification timeout", flashFrom(t, h, rec).Message)
	})
}

func TestWebhookStatusCodes(t *testing.T) {
	const body = `{"event":"charge.success","data":{"reference":"ref"}}`

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid signature", port.ErrInvalidSignature, http.StatusUnauthorized},
		{"unhandled event", port.ErrUnhandledEvent, http.StatusOK},
		{"malformed", port.ErrMalformedPayload, http.StatusBadRequest},
		{"unknown reference", port.ErrTransactionNotFound, http.StatusOK},
		{"amount mismatch", port.ErrAmountMismatch, http.StatusOK},
		{"persistence failure", errors.New("deadlock detected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().HandleWebhook(mock.Anything, []byte(body), "sig").Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/paystack/webhook", strings.NewReader(body))
			req.Header.Set("X-Paystack-Signature", "sig")
			rec := serve(h, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}

	t.Run("processed", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().HandleWebhook(mock.Anything, []byte(body), "sig").
			Return(&domain.Transaction{Reference: "ref", Status: domain.StatusSuccess}, nil)

		req := httptest.NewRequest(http.MethodPost, "/paystack/webhook", strings.NewReader(body))
		req.Header.Set("X-Paystack-Signature", "sig")
		rec := serve(h, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCampaignPage(t *testing.T) {
	h, svc := newTestHandler(t)
	camp := testCampaign(1, "Utako Food Drive")
	svc.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&camp, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/campaign/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Utako Food Drive")
	assert.Contains(t, body, "₦250,000.00 raised of ₦1,000,000.00")
	assert.Contains(t, body, "25.0%")
	assert.Contains(t, body, `value="5000"`)
	assert.Contains(t, body, "(fee about ₦175.00)")
	assert.Contains(t, body, `<option value="GHS">`)
}

func TestCampaignPageNotFound(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(nil, port.ErrCampaignNotFound)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/campaign/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/campaign/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomeShowsFeaturedCampaigns(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		testCampaign(1, "First cause"),
		testCampaign(2, "Second cause"),
		testCampaign(3, "Third cause"),
		testCampaign(4, "Fourth cause"),
	}, nil)
	svc.EXPECT().GetStats(mock.Anything).Return(&port.StatsResp{
		Campaigns:       4,
		ActiveCampaigns: 4,
		TotalGoal:       decimal.NewFromInt(4_000_000),
		TotalRaised:     decimal.NewFromInt(1_000_000),
		Donations:       12,
	}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Third cause")
	assert.NotContains(t, body, "Fourth cause")
	assert.Contains(t, body, "₦1,000,000.00 raised")
	assert.Contains(t, body, "12 online donations")
}

func TestFlashShownOnce(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().CheckGateway(mock.Anything).Return(42, nil)
	svc.EXPECT().GetReceipt(mock.Anything, "ref").Return(&port.Receipt{
		Transaction: domain.Transaction{
			Reference: "ref",
			Amount:    decimal.NewFromInt(5000),
			Currency:  "NGN",
			Status:    domain.StatusSuccess,
		},
		Campaign: testCampaign(1, "Utako Food Drive"),
	}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/test-paystack", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/donate/success/ref", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	page := serve(h, req)

	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Found 42 banks.")
	assert.Contains(t, page.Body.String(), "₦5,000.00")

	var cleared bool
	for _, c := range page.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie should be cleared after display")
}

func TestFlashRejectsForgedCookie(t *testing.T) {
	h, _ := newTestHandler(t)
	other := newFlashCodec("another-secret")
	rec := httptest.NewRecorder()
	require.NoError(t, other.set(rec, levelSuccess, "forged"))

	assert.Nil(t, flashFrom(t, h, rec))
}

func TestFlashExpires(t *testing.T) {
	h, _ := newTestHandler(t)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	h.flash.now = func() time.Time { return issued }
	rec := httptest.NewRecorder()
	require.NoError(t, h.flash.set(rec, levelError, "old news"))

	h.flash.now = func() time.Time { return issued.Add(flashTTL + time.Minute) }
	assert.Nil(t, flashFrom(t, h, rec))
}

func TestAPI(t *testing.T) {
	t.Run("campaigns", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{testCampaign(1, "Cause")}, nil)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "250000", out[0]["raised_amount"])
		assert.InDelta(t, 25.0, out[0]["progress_percentage"], 0.001)
		assert.Equal(t, "/static/images/campaigns/default.jpg", out[0]["image_url"])
	})

	t.Run("campaign not found", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().GetCampaign(mock.Anything, int64(5)).Return(nil, port.ErrCampaignNotFound)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/5", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("stats", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().GetStats(mock.Anything).Return(&port.StatsResp{
			Campaigns:   3,
			TotalGoal:   decimal.NewFromInt(8_000_000),
			TotalRaised: decimal.NewFromInt(4_000_000),
			Donations:   2,
		}, nil)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"campaigns":3,"active_campaigns":0,"total_goal":"8000000","total_raised":"4000000","donations":2}`,
			rec.Body.String())
	})

	t.Run("stats error", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().GetStats(mock.Anything).Return(nil, errors.New("db down"))

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})
}

func TestAboutPage(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().GetStats(mock.Anything).Return(&port.StatsResp{
		Campaigns:   3,
		TotalRaised: decimal.NewFromInt(4_000_000),
		Donations:   9,
	}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "₦4,000,000.00")
	assert.Contains(t, body, "LVP Ventures")
	assert.Contains(t, body, "The Voice Against Gun Violence")
}

func TestContactPage(t *testing.T) {
	svc := mocks.NewMockDonationUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, logger, configs.Site{
		Name:      "Test Foundation",
		SecretKey: "test-secret",
		Email:     "hello@example.org",
		Instagram: "testfoundation",
		Address:   "12 Garki Road, Abuja",
	}, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/contact", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "mailto:hello@example.org")
	assert.Contains(t, body, "https://www.instagram.com/testfoundation")
	assert.Contains(t, body, "12 Garki Road, Abuja")
	assert.Contains(t, body, "Monday - Friday: 9:00 AM - 5:00 PM")
	assert.NotContains(t, body, "Phone")
}
