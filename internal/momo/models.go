package momo

import (
	"github.com/shopspring/decimal"
)

// OrderInfo là dữ liệu đơn hàng do storefront gửi lên.
// OrderID luôn do RequestBuilder sinh ra, giá trị client gửi lên sẽ bị ghi đè.
type OrderInfo struct {
	FullName  string
	Amount    decimal.Decimal
	OrderInfo string
	OrderID   string
}

// CreatePaymentRequest is the JSON body of the create-payment call.
// Field order follows the gateway documentation.
type CreatePaymentRequest struct {
	AccessKey   string `json:"accessKey"`
	PartnerCode string `json:"partnerCode"`
	RequestType string `json:"requestType"`
	NotifyURL   string `json:"notifyUrl"`
	ReturnURL   string `json:"returnUrl"`
	OrderID     string `json:"orderId"`
	Amount      string `json:"amount"`
	OrderInfo   string `json:"orderInfo"`
	RequestID   string `json:"requestId"`
	ExtraData   string `json:"extraData"`
	Signature   string `json:"signature"`
}

// PaymentRequest is a signed create-payment request ready to be sent.
type PaymentRequest struct {
	OrderID      string
	RawSignature string
	Body         CreatePaymentRequest
}

type CreatePaymentResponse struct {
	PartnerCode      string `json:"partnerCode"`
	RequestID        string `json:"requestId"`
	OrderID          string `json:"orderId"`
	ErrorCode        int    `json:"errorCode"`
	Message          string `json:"message"`
	LocalMessage     string `json:"localMessage"`
	RequestType      string `json:"requestType"`
	PayURL           string `json:"payUrl"`
	QrCodeURL        string `json:"qrCodeUrl"`
	Deeplink         string `json:"deeplink"`
	DeeplinkWebInApp string `json:"deeplinkWebInApp"`
	Signature        string `json:"signature"`
}

// CallbackResult is the display-ready outcome carried back by the gateway redirect.
type CallbackResult struct {
	Amount    string `json:"amount"`
	OrderID   string `json:"order_id"`
	OrderInfo string `json:"order_info"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
	TransID   string `json:"trans_id,omitempty"`
}

// Succeeded reports whether the gateway marked the transaction as paid.
func (r CallbackResult) Succeeded() bool {
	return r.ErrorCode == "0"
}
