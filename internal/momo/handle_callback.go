package momo

import (
	"crypto/hmac"
	"net/url"
	"strings"
	
	"github.com/katatrina/momo-gateway/internal/metrics"
)

// ParseCallback extracts the payment outcome from callback parameters.
// Missing keys fall back to placeholders so the result can always be rendered.
// It does not check the signature; call VerifyCallback first.
func (s *MomoService) ParseCallback(params map[string]string) CallbackResult {
	return ParseCallback(params)
}

func ParseCallback(params map[string]string) CallbackResult {
	return CallbackResult{
		Amount:    valueOrDefault(params, "amount", "0"),
		OrderID:   valueOrDefault(params, "orderId", "No Order"),
		OrderInfo: valueOrDefault(params, "orderInfo", "No Info"),
		ErrorCode: params["errorCode"],
		Message:   params["message"],
		TransID:   params["transId"],
	}
}

// ParseCallbackQuery is ParseCallback for a raw query collection.
func (s *MomoService) ParseCallbackQuery(query url.Values) CallbackResult {
	return ParseCallback(FlattenValues(query))
}

// VerifyCallback kiểm tra chữ ký của callback từ MoMo
func (s *MomoService) VerifyCallback(params map[string]string) error {
	received := strings.ToLower(params["signature"])
	if received == "" {
		metrics.IncCallback(metrics.CallbackResultMissingSignature)
		return ErrMissingSignature
	}
	
	expected := s.builder.Sign(callbackRawSignature(params))
	if !hmac.Equal([]byte(received), []byte(expected)) {
		metrics.IncCallback(metrics.CallbackResultInvalidSignature)
		return ErrInvalidSignature
	}
	
	metrics.IncCallback(metrics.CallbackResultOK)
	return nil
}

// FlattenValues keeps the first value of every key.
func FlattenValues(values url.Values) map[string]string {
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	
	return params
}

func valueOrDefault(params map[string]string, key, fallback string) string {
	if value, ok := params[key]; ok {
		return value
	}
	
	return fallback
}
