// Package qpay implements the payment gateway port against the QPay v2 API.
package qpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"optika/config"
	"optika/internal/domain/entity"
	"optika/internal/domain/service"
	"optika/internal/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	authPath         = "/v2/auth/token"
	invoicePath      = "/v2/invoice"
	paymentCheckPath = "/v2/payment/check"

	requestTimeout = 15 * time.Second

	// tokenRefreshMargin retires a cached token slightly before the provider
	// would, so an in-flight request never rides an expiring token.
	tokenRefreshMargin = 30 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type client struct {
	baseURL     string
	username    string
	password    string
	invoiceCode string
	callbackURL string
	httpClient  *http.Client
	logger      *slog.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a QPay gateway client.
func New(params Params) service.PaymentGateway {
	cfg := params.Config.QPay

	return &client{
		baseURL:     cfg.BaseURL,
		username:    cfg.Username,
		password:    cfg.Password,
		invoiceCode: cfg.InvoiceCode,
		callbackURL: cfg.CallbackURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
		logger:      params.Logger,
	}
}

// Authenticate exchanges the configured credentials for a bearer token and
// caches it until shortly before expiry.
func (c *client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshTokenLocked(ctx)
}

// CreateInvoice mints an invoice with the provider.
func (c *client) CreateInvoice(ctx context.Context, input service.CreateInvoiceInput) (*service.CreatedInvoice, error) {
	reqBody := createInvoiceRequest{
		InvoiceCode:         c.invoiceCode,
		SenderInvoiceNo:     input.SenderInvoiceNo,
		InvoiceReceiverCode: input.ReceiverCode,
		InvoiceDescription:  input.Description,
		Amount:              input.Amount.InexactFloat64(),
		CallbackURL:         c.callbackURL,
	}

	var resp createInvoiceResponse
	if err := c.doAuthorized(ctx, http.MethodPost, invoicePath, reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.InvoiceID == "" {
		return nil, errors.New("qpay: invoice response missing invoice_id")
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "QPay invoice created",
		slog.String("invoiceId", resp.InvoiceID),
		slog.String("senderInvoiceNo", input.SenderInvoiceNo),
	)

	return &service.CreatedInvoice{
		InvoiceID: resp.InvoiceID,
		QRText:    resp.QRText,
		QRImage:   resp.QRImage,
		ShortURL:  resp.ShortURL,
	}, nil
}

// CheckPayment queries the provider for the latest payment record of an
// invoice. An invoice with no settlement rows yet reports NEW.
func (c *client) CheckPayment(ctx context.Context, invoiceID string) (*service.PaymentRecord, error) {
	reqBody := paymentCheckRequest{
		ObjectType: "INVOICE",
		ObjectID:   invoiceID,
		Offset: paymentCheckPageReq{
			PageNumber: 1,
			PageLimit:  100,
		},
	}

	var resp paymentCheckResponse
	if err := c.doAuthorized(ctx, http.MethodPost, paymentCheckPath, reqBody, &resp); err != nil {
		return nil, err
	}

	if resp.Count == 0 || len(resp.Rows) == 0 {
		return &service.PaymentRecord{Status: entity.PaymentStatusNew}, nil
	}

	row := resp.Rows[0]
	amount, err := decimal.NewFromString(row.PaymentAmount)
	if err != nil {
		amount = decimal.Zero
	}

	status := entity.PaymentStatus(row.PaymentStatus)
	if !status.IsValid() {
		// Unknown provider statuses are treated as still pending rather than
		// failing the whole check.
		c.logger.LogAttrs(ctx, slog.LevelWarn, "QPay returned unknown payment status",
			slog.String("invoiceId", invoiceID),
			slog.String("status", row.PaymentStatus),
		)
		status = entity.PaymentStatusNew
	}

	return &service.PaymentRecord{
		PaymentID: row.PaymentID,
		Status:    status,
		Amount:    amount,
	}, nil
}

// doAuthorized runs one API call with a valid bearer token, refreshing the
// cached token first when it is missing or about to expire.
func (c *client) doAuthorized(ctx context.Context, method, path string, reqBody, respBody any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Wrap(err, "qpay: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "qpay: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "qpay: %s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "qpay: read response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.upstreamError(ctx, path, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		return errors.Wrapf(err, "qpay: decode %s response", path)
	}

	return nil
}

// token returns a valid cached bearer token, refreshing it when necessary.
func (c *client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenRefreshMargin)) {
		return c.accessToken, nil
	}

	if err := c.refreshTokenLocked(ctx); err != nil {
		return "", err
	}

	return c.accessToken, nil
}

// refreshTokenLocked fetches a fresh token. Caller must hold c.mu.
func (c *client) refreshTokenLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authPath, nil)
	if err != nil {
		return errors.Wrap(err, "qpay: build auth request")
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "qpay: auth request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "qpay: read auth response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.LogAttrs(ctx, slog.LevelError, "QPay authentication failed",
			slog.Int("status", resp.StatusCode),
		)

		return errors.Errorf("qpay: auth failed with status %d", resp.StatusCode)
	}

	var tokenResp authTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return errors.Wrap(err, "qpay: decode auth response")
	}
	if tokenResp.AccessToken == "" {
		return errors.New("qpay: auth response missing access_token")
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return nil
}

func (c *client) upstreamError(ctx context.Context, path string, status int, body []byte) error {
	var errResp errorResponse
	_ = json.Unmarshal(body, &errResp)

	c.logger.LogAttrs(ctx, slog.LevelError, "QPay request failed",
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("providerError", errResp.Error),
		slog.String("providerMessage", errResp.Message),
	)

	if status == http.StatusUnauthorized {
		// Drop the cached token so the next call re-authenticates.
		c.mu.Lock()
		c.accessToken = ""
		c.mu.Unlock()
	}

	return errors.Errorf("qpay: %s failed with status %d", path, status)
}
