package qpay

// Wire types for the QPay v2 API. Field names follow the provider's JSON
// contract exactly.

type authTokenResponse struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type createInvoiceRequest struct {
	InvoiceCode         string  `json:"invoice_code"`
	SenderInvoiceNo     string  `json:"sender_invoice_no"`
	InvoiceReceiverCode string  `json:"invoice_receiver_code"`
	InvoiceDescription  string  `json:"invoice_description"`
	Amount              float64 `json:"amount"`
	CallbackURL         string  `json:"callback_url"`
}

type createInvoiceResponse struct {
	InvoiceID string `json:"invoice_id"`
	QRText    string `json:"qr_text"`
	QRImage   string `json:"qr_image"`
	ShortURL  string `json:"qPay_shortUrl"`
}

type paymentCheckRequest struct {
	ObjectType string              `json:"object_type"`
	ObjectID   string              `json:"object_id"`
	Offset     paymentCheckPageReq `json:"offset"`
}

type paymentCheckPageReq struct {
	PageNumber int `json:"page_number"`
	PageLimit  int `json:"page_limit"`
}

type paymentCheckResponse struct {
	Count int64            `json:"count"`
	Rows  []paymentCheckRow `json:"rows"`
}

type paymentCheckRow struct {
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
	PaymentAmount string `json:"payment_amount"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
