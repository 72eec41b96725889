package momo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	
	"github.com/katatrina/momo-gateway/internal/metrics"
)

// CreatePayment signs the order and asks MoMo for a payment page.
// Invalid input is rejected before any network call.
func (s *MomoService) CreatePayment(ctx context.Context, order OrderInfo) (*CreatePaymentResponse, error) {
	req, err := s.builder.Build(order)
	if err != nil {
		metrics.IncPayment(metrics.PaymentStatusRejected)
		return nil, err
	}
	
	metrics.IncPayment(metrics.PaymentStatusInitiated)
	s.logger.Debug().
		Str("order_id", req.OrderID).
		Str("amount", req.Body.Amount).
		Msg("sending momo create payment request")
	
	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetBody(req.Body).
		Post(s.merchant.GatewayURL)
	if err != nil {
		metrics.ObserveGatewayRequest(metrics.GatewayOutcomeTransportError, time.Since(start))
		metrics.IncPayment(metrics.PaymentStatusFailed)
		return nil, fmt.Errorf("failed to send momo create payment request: %w", err)
	}
	
	// giữ nguyên body, resp.String() sẽ cắt khoảng trắng
	body := string(resp.Bytes())
	
	if !resp.IsSuccess() {
		metrics.ObserveGatewayRequest(metrics.GatewayOutcomeHTTPError, time.Since(start))
		metrics.IncPayment(metrics.PaymentStatusFailed)
		return nil, &GatewayError{
			StatusCode: resp.StatusCode(),
			Body:       body,
		}
	}
	metrics.ObserveGatewayRequest(metrics.GatewayOutcomeOK, time.Since(start))
	
	var result CreatePaymentResponse
	if err = json.Unmarshal([]byte(body), &result); err != nil {
		metrics.IncPayment(metrics.PaymentStatusFailed)
		return nil, &ParseError{Body: body, Err: err}
	}
	
	if result.ErrorCode != 0 {
		metrics.IncPayment(metrics.PaymentStatusFailed)
		return nil, &GatewayError{
			StatusCode: resp.StatusCode(),
			Body:       body,
			ErrorCode:  result.ErrorCode,
			Message:    result.Message,
		}
	}
	
	if result.OrderID == "" {
		result.OrderID = req.OrderID
	}
	
	metrics.IncPayment(metrics.PaymentStatusCreated)
	return &result, nil
}
