package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"charity/internal/core/domain"
	"charity/internal/core/money"
	"charity/internal/core/port"
)

const defaultCurrency = "NGN"

// gatewayStatusFailed is the only non-success verification status that is
// final; abandoned or ongoing payments may still complete.
const gatewayStatusFailed = "failed"

// DonationUseCase provides the donation flow: validating form input,
// creating pending transactions, initializing payments and completing them
// from either the browser callback or the gateway webhook.
type DonationUseCase struct {
	repo        port.DonationRepository
	gateway     port.PaymentGateway
	callbackURL string
	logger      *slog.Logger
	validate    *validator.Validate
	now         func() time.Time
}

var _ port.DonationUseCase = (*DonationUseCase)(nil)

// NewDonationUseCase creates a usecase. callbackURL is where the gateway
// sends donors after payment.
func NewDonationUseCase(repo port.DonationRepository, gateway port.PaymentGateway, callbackURL string, logger *slog.Logger) *DonationUseCase {
	return &DonationUseCase{
		repo:        repo,
		gateway:     gateway,
		callbackURL: callbackURL,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         time.Now,
	}
}

// ListCampaigns returns the active campaigns.
func (u *DonationUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, true)
}

// GetCampaign returns an active campaign.
func (u *DonationUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// GetStats returns totals across campaigns.
func (u *DonationUseCase) GetStats(ctx context.Context) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx)
}

// Donate validates req, records a pending transaction and initializes the
// payment. If the gateway call fails the transaction is left pending
// without a reference and the gateway error is returned unchanged.
func (u *DonationUseCase) Donate(ctx context.Context, req port.DonationReq) (*port.DonationResp, error) {
	req.Amount = req.Amount.Truncate(2)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := u.validateDonation(req); err != nil {
		return nil, err
	}

	camp, err := u.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		Amount:        req.Amount,
		Currency:      req.Currency,
		CampaignID:    camp.ID,
		PaymentMethod: domain.PaymentMethodPaystack,
		Status:        domain.StatusPending,
	}
	if err = u.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	payment, err := u.gateway.Initialize(ctx, port.InitializeReq{
		Email:       req.Email,
		Amount:      req.Amount,
		Currency:    req.Currency,
		CallbackURL: u.callbackURL,
		Metadata: port.PaymentMetadata{
			CampaignID:    camp.ID,
			CampaignTitle: camp.Title,
			TransactionID: txn.ID,
			Amount:        req.Amount,
		},
	})
	if err != nil {
		return nil, err
	}

	if err = u.repo.AssignReference(ctx, txn.ID, payment.Reference); err != nil {
		return nil, fmt.Errorf("assign reference: %w", err)
	}
	u.logger.Info("donation initialized",
		slog.Int64("transaction_id", txn.ID),
		slog.Int64("campaign_id", camp.ID),
		slog.String("reference", payment.Reference))

	return &port.DonationResp{
		TransactionID:    txn.ID,
		Reference:        payment.Reference,
		AuthorizationURL: payment.AuthorizationURL,
	}, nil
}

// validateDonation checks the input that needs no lookup, in the order
// donors see the messages.
func (u *DonationUseCase) validateDonation(req port.DonationReq) error {
	if !req.Amount.IsPositive() {
		return port.ErrInvalidAmount
	}
	minimum, ok := money.Minimum(req.Currency)
	if !ok {
		return port.ErrUnsupportedCurrency
	}
	if req.Amount.LessThan(minimum) {
		return port.ErrBelowMinimum
	}
	if req.Email == "" {
		return port.ErrMissingEmail
	}
	if err := u.validate.Var(req.Email, "email"); err != nil {
		return port.ErrInvalidEmail
	}
	return nil
}

// ConfirmPayment verifies reference with the gateway and completes the
// transaction. A definitive failure reported by the gateway marks the
// transaction failed.
func (u *DonationUseCase) ConfirmPayment(ctx context.Context, reference string) (*port.Receipt, error) {
	if reference == "" {
		return nil, port.ErrTransactionNotFound
	}

	res, err := u.gateway.Verify(ctx, reference)
	if err != nil {
		var nerr *port.PaymentNotSuccessfulError
		if errors.As(err, &nerr) && nerr.Status == gatewayStatusFailed {
			u.markFailed(ctx, reference)
		}
		return nil, err
	}

	txn, err := u.complete(ctx, res)
	if err != nil {
		return nil, err
	}
	if !txn.IsCompleted() {
		return nil, &port.PaymentNotSuccessfulError{Reference: reference, Status: string(txn.Status)}
	}
	return u.receipt(ctx, txn)
}

// HandleWebhook authenticates a gateway notification and completes the
// transaction it reports.
func (u *DonationUseCase) HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.Transaction, error) {
	res, err := u.gateway.ParseWebhook(body, signature)
	if err != nil {
		return nil, err
	}
	return u.complete(ctx, res)
}

// GetReceipt returns the donation behind reference. A transaction that is
// still pending is verified again, which covers a callback that never
// reached the server.
func (u *DonationUseCase) GetReceipt(ctx context.Context, reference string) (*port.Receipt, error) {
	txn, err := u.repo.FindTransactionByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	if txn == nil {
		return nil, port.ErrTransactionNotFound
	}
	switch txn.Status {
	case domain.StatusSuccess:
		return u.receipt(ctx, txn)
	case domain.StatusFailed:
		return nil, &port.PaymentNotSuccessfulError{Reference: reference, Status: string(txn.Status)}
	default:
		return u.ConfirmPayment(ctx, reference)
	}
}

// CheckGateway probes gateway connectivity.
func (u *DonationUseCase) CheckGateway(ctx context.Context) (int, error) {
	return u.gateway.Ping(ctx)
}

// complete applies a verified payment to its transaction exactly once. It
// is shared by the callback and the webhook; whichever arrives second finds
// the transaction already completed and changes nothing. A transaction
// previously marked failed is still completed, because the gateway has
// now verified the money.
func (u *DonationUseCase) complete(ctx context.Context, res *port.PaymentResult) (*domain.Transaction, error) {
	logger := u.logger.With(slog.String("reference", res.Reference))

	txn, err := u.repo.FindTransactionByReference(ctx, res.Reference)
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	if txn == nil {
		logger.Warn("payment for unknown reference")
		return nil, port.ErrTransactionNotFound
	}
	if !txn.Amount.Equal(res.Amount) || !strings.EqualFold(txn.Currency, res.Currency) {
		logger.Error("verified payment does not match transaction",
			slog.String("stored", txn.Amount.StringFixed(2)+" "+txn.Currency),
			slog.String("verified", res.Amount.StringFixed(2)+" "+res.Currency))
		return nil, fmt.Errorf("%w: reference %s", port.ErrAmountMismatch, res.Reference)
	}
	if txn.IsCompleted() {
		return txn, nil
	}
	if txn.Status == domain.StatusFailed {
		// The donor retried on the same checkout after a declined attempt.
		logger.Warn("verified payment for failed transaction, completing it")
	}

	completedAt := res.PaidAt
	if completedAt.IsZero() {
		completedAt = u.now()
	}
	applied, err := u.repo.CompleteTransaction(ctx, res.Reference, port.Completion{
		Channel:     res.Channel,
		CompletedAt: completedAt.UTC(),
	})
	if err != nil {
		logger.Error("completing transaction failed, left pending", slog.Any("error", err))
		return nil, fmt.Errorf("complete transaction: %w", err)
	}
	if !applied {
		// Lost the race to the other entry point; report what it stored.
		current, err := u.repo.FindTransactionByReference(ctx, res.Reference)
		if err != nil {
			return nil, fmt.Errorf("find transaction: %w", err)
		}
		if current == nil {
			return nil, port.ErrTransactionNotFound
		}
		return current, nil
	}

	logger.Info("donation completed",
		slog.Int64("transaction_id", txn.ID),
		slog.Int64("campaign_id", txn.CampaignID),
		slog.String("amount", txn.Amount.StringFixed(2)),
		slog.String("currency", txn.Currency))
	txn.Status = domain.StatusSuccess
	txn.Channel = res.Channel
	at := completedAt.UTC()
	txn.CompletedAt = &at
	return txn, nil
}

func (u *DonationUseCase) markFailed(ctx context.Context, reference string) {
	ok, err := u.repo.FailTransaction(ctx, reference)
	if err != nil {
		u.logger.Error("marking transaction failed", slog.String("reference", reference), slog.Any("error", err))
		return
	}
	if ok {
		u.logger.Info("transaction failed", slog.String("reference", reference))
	}
}

func (u *DonationUseCase) receipt(ctx context.Context, txn *domain.Transaction) (*port.Receipt, error) {
	camp, err := u.repo.GetCampaign(ctx, txn.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	return &port.Receipt{Transaction: *txn, Campaign: *camp}, nil
}
