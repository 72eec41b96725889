package momo

import (
	"fmt"
	"strings"
	
	"github.com/katatrina/momo-gateway/internal/util"
	"github.com/shopspring/decimal"
	"github.com/zpmep/hmacutil"
)

// Thứ tự các trường trong chuỗi ký của callback, theo tài liệu của MoMo.
var callbackSignatureFields = []string{
	"partnerCode",
	"accessKey",
	"requestId",
	"amount",
	"orderId",
	"orderInfo",
	"orderType",
	"transId",
	"message",
	"localMessage",
	"responseTime",
	"errorCode",
	"payType",
	"extraData",
}

type signatureParam struct {
	key   string
	value string
}

// RequestBuilder assembles and signs create-payment requests for one merchant.
type RequestBuilder struct {
	merchant   MerchantConfig
	newOrderID func() string
}

func NewRequestBuilder(merchant MerchantConfig) *RequestBuilder {
	return &RequestBuilder{
		merchant:   merchant,
		newOrderID: util.GenerateMomoOrderID,
	}
}

// Build validates the order, assigns it a fresh order ID and returns the signed request.
// The order passed in is not modified.
func (b *RequestBuilder) Build(order OrderInfo) (*PaymentRequest, error) {
	// MoMo chỉ nhận số tiền nguyên (VND), làm tròn trước khi kiểm tra
	amount := order.Amount.Round(0)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	
	order.OrderID = b.newOrderID()
	order.OrderInfo = fmt.Sprintf("Khách hàng: %s. Nội dung: %s", order.FullName, order.OrderInfo)
	
	formattedAmount := amount.StringFixed(0)
	
	// requestId dùng chung giá trị với orderId
	rawSignature := joinSignatureParams([]signatureParam{
		{"partnerCode", b.merchant.PartnerCode},
		{"accessKey", b.merchant.AccessKey},
		{"requestId", order.OrderID},
		{"amount", formattedAmount},
		{"orderId", order.OrderID},
		{"orderInfo", order.OrderInfo},
		{"returnUrl", b.merchant.ReturnURL},
		{"notifyUrl", b.merchant.NotifyURL},
		{"extraData", ""},
	})
	
	return &PaymentRequest{
		OrderID:      order.OrderID,
		RawSignature: rawSignature,
		Body: CreatePaymentRequest{
			AccessKey:   b.merchant.AccessKey,
			PartnerCode: b.merchant.PartnerCode,
			RequestType: b.merchant.RequestType,
			NotifyURL:   b.merchant.NotifyURL,
			ReturnURL:   b.merchant.ReturnURL,
			OrderID:     order.OrderID,
			Amount:      formattedAmount,
			OrderInfo:   order.OrderInfo,
			RequestID:   order.OrderID,
			ExtraData:   "",
			Signature:   b.Sign(rawSignature),
		},
	}, nil
}

// Sign returns the lowercase hex HMAC-SHA256 of data keyed with the merchant secret.
func (b *RequestBuilder) Sign(data string) string {
	return hmacutil.HexStringEncode(hmacutil.SHA256, b.merchant.SecretKey, data)
}

func joinSignatureParams(params []signatureParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s=%s", p.key, p.value))
	}
	
	return strings.Join(parts, "&")
}

func callbackRawSignature(params map[string]string) string {
	signatureParams := make([]signatureParam, 0, len(callbackSignatureFields))
	for _, key := range callbackSignatureFields {
		signatureParams = append(signatureParams, signatureParam{key, params[key]})
	}
	
	return joinSignatureParams(signatureParams)
}
