package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/momo-gateway/internal/momo"
	"github.com/katatrina/momo-gateway/internal/util"
	"github.com/katatrina/momo-gateway/internal/validator"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type createMomoPaymentRequest struct {
	FullName  string      `json:"full_name" form:"full_name" binding:"required"`
	Amount    json.Number `json:"amount" form:"amount" binding:"required"`
	OrderInfo string      `json:"order_info" form:"order_info"`
}

type createMomoPaymentResponse struct {
	OrderID string `json:"order_id"`
	PayURL  string `json:"pay_url"`
}

type momoCallbackResponse struct {
	momo.CallbackResult
	AmountDisplay string `json:"amount_display"`
	Succeeded     bool   `json:"succeeded"`
}

// createMomoPayment creates a MoMo payment and redirects the browser to the payment page.
// Clients sending "Accept: application/json" get the payment URL as JSON instead.
func (server *Server) createMomoPayment(c *gin.Context) {
	var req createMomoPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if violations := validateCreateMomoPaymentRequest(&req); violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}
	
	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(ErrInvalidAmount))
		return
	}
	
	result, err := server.momoService.CreatePayment(c.Request.Context(), momo.OrderInfo{
		FullName:  req.FullName,
		Amount:    amount,
		OrderInfo: req.OrderInfo,
	})
	if err != nil {
		status := momoErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logGatewayFailure(err)
		}
		c.JSON(status, errorResponse(err))
		return
	}
	
	if result.PayURL == "" {
		log.Error().Str("order_id", result.OrderID).Msg("momo response has no pay url 😣")
		c.JSON(http.StatusBadGateway, errorResponse(ErrMissingPayURL))
		return
	}
	
	log.Info().
		Str("order_id", result.OrderID).
		Str("order_info", util.TruncateContent(req.OrderInfo, 50)).
		Msg("momo payment created ✅")
	
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, createMomoPaymentResponse{
			OrderID: result.OrderID,
			PayURL:  result.PayURL,
		})
		return
	}
	
	c.Redirect(http.StatusFound, result.PayURL)
}

// handleMomoReturn nhận trình duyệt quay về từ MoMo và trả về kết quả thanh toán
func (server *Server) handleMomoReturn(c *gin.Context) {
	params := momo.FlattenValues(c.Request.URL.Query())
	
	if err := server.momoService.VerifyCallback(params); err != nil {
		log.Warn().Err(err).Str("order_id", params["orderId"]).Msg("rejected momo return callback")
		c.JSON(momoErrorStatus(err), errorResponse(err))
		return
	}
	
	result := server.momoService.ParseCallback(params)
	c.JSON(http.StatusOK, newMomoCallbackResponse(result))
}

// handleMomoNotify nhận thông báo kết quả thanh toán server-to-server từ MoMo
func (server *Server) handleMomoNotify(c *gin.Context) {
	params, err := notifyParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if err = server.momoService.VerifyCallback(params); err != nil {
		log.Warn().Err(err).Str("order_id", params["orderId"]).Msg("rejected momo notification")
		c.JSON(momoErrorStatus(err), errorResponse(err))
		return
	}
	
	result := server.momoService.ParseCallback(params)
	log.Info().
		Str("order_id", result.OrderID).
		Str("trans_id", result.TransID).
		Str("error_code", result.ErrorCode).
		Bool("succeeded", result.Succeeded()).
		Msg("momo notification received")
	
	c.Status(http.StatusNoContent)
}

func validateCreateMomoPaymentRequest(req *createMomoPaymentRequest) (violations []*FieldViolation) {
	if err := validator.ValidateFullName(req.FullName); err != nil {
		violations = append(violations, fieldViolation("full_name", err))
	}
	
	if err := validator.ValidateOrderInfo(req.OrderInfo); err != nil {
		violations = append(violations, fieldViolation("order_info", err))
	}
	
	return violations
}

func newMomoCallbackResponse(result momo.CallbackResult) momoCallbackResponse {
	display := result.Amount
	if amount, err := decimal.NewFromString(result.Amount); err == nil {
		display = util.FormatVND(amount)
	}
	
	return momoCallbackResponse{
		CallbackResult: result,
		AmountDisplay:  display,
		Succeeded:      result.Succeeded(),
	}
}

// notifyParams đọc body của notification, MoMo gửi dạng form hoặc JSON
func notifyParams(c *gin.Context) (map[string]string, error) {
	if c.ContentType() != gin.MIMEJSON {
		if err := c.Request.ParseForm(); err != nil {
			return nil, fmt.Errorf("failed to parse notification form: %w", err)
		}
		return momo.FlattenValues(c.Request.PostForm), nil
	}
	
	// số trong body giữ nguyên dạng json.Number (binding.EnableDecoderUseNumber bật trong setupRouter)
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, fmt.Errorf("failed to parse notification body: %w", err)
	}
	
	params := make(map[string]string, len(body))
	for key, value := range body {
		if value == nil {
			params[key] = ""
			continue
		}
		params[key] = fmt.Sprint(value)
	}
	
	return params, nil
}

func logGatewayFailure(err error) {
	event := log.Error().Err(err)
	
	var gatewayErr *momo.GatewayError
	if errors.As(err, &gatewayErr) {
		event = event.Int("status_code", gatewayErr.StatusCode).Int("error_code", gatewayErr.ErrorCode)
	}
	
	event.Msg("failed to create momo payment 😣")
}
