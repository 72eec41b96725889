package momo

import (
	"net/url"
	"strings"
	"testing"
	
	"github.com/stretchr/testify/require"
)

// Chữ ký tham chiếu được tính sẵn bằng HMAC-SHA256 với secret key của merchant test.
const testCallbackSignature = "43fb2e5c9d7123923fc7bbe19a7c9e4112ca601f9d9b58fd75b992e35e9efe5f"

func signedCallbackParams() map[string]string {
	return map[string]string{
		"partnerCode":  "MOMOBKUN20180529",
		"accessKey":    "klm05TvNBzhg7h7j",
		"requestId":    testOrderID,
		"amount":       "100000",
		"orderId":      testOrderID,
		"orderInfo":    "Khách hàng: Test. Nội dung: note",
		"orderType":    "momo_wallet",
		"transId":      "2588659987",
		"message":      "Success",
		"localMessage": "Thành công",
		"responseTime": "2024-06-10 10:15:30",
		"errorCode":    "0",
		"payType":      "qr",
		"extraData":    "",
		"signature":    testCallbackSignature,
	}
}

func TestParseCallbackDefaults(t *testing.T) {
	result := ParseCallback(map[string]string{})
	
	require.Equal(t, "0", result.Amount)
	require.Equal(t, "No Order", result.OrderID)
	require.Equal(t, "No Info", result.OrderInfo)
	require.False(t, result.Succeeded())
}

func TestParseCallbackKeepsValues(t *testing.T) {
	result := ParseCallback(map[string]string{
		"amount":    "50000",
		"orderId":   "abc",
		"orderInfo": "hi",
	})
	
	require.Equal(t, CallbackResult{
		Amount:    "50000",
		OrderID:   "abc",
		OrderInfo: "hi",
	}, result)
}

func TestParseCallbackQuery(t *testing.T) {
	service := NewMomoService(testMerchant("https://gateway.invalid"))
	
	query := url.Values{}
	query.Add("amount", "50000")
	query.Add("amount", "99999")
	query.Set("orderId", "abc")
	query.Set("errorCode", "0")
	query.Set("transId", "2588659987")
	
	result := service.ParseCallbackQuery(query)
	require.Equal(t, "50000", result.Amount)
	require.Equal(t, "abc", result.OrderID)
	require.Equal(t, "No Info", result.OrderInfo)
	require.Equal(t, "2588659987", result.TransID)
	require.True(t, result.Succeeded())
}

func TestVerifyCallback(t *testing.T) {
	service := NewMomoService(testMerchant("https://gateway.invalid"))
	
	t.Run("valid signature", func(t *testing.T) {
		require.NoError(t, service.VerifyCallback(signedCallbackParams()))
	})
	
	t.Run("uppercase signature", func(t *testing.T) {
		params := signedCallbackParams()
		params["signature"] = strings.ToUpper(testCallbackSignature)
		require.NoError(t, service.VerifyCallback(params))
	})
	
	t.Run("tampered amount", func(t *testing.T) {
		params := signedCallbackParams()
		params["amount"] = "1000"
		require.ErrorIs(t, service.VerifyCallback(params), ErrInvalidSignature)
	})
	
	t.Run("missing signature", func(t *testing.T) {
		params := signedCallbackParams()
		delete(params, "signature")
		require.ErrorIs(t, service.VerifyCallback(params), ErrMissingSignature)
	})
	
	t.Run("wrong secret", func(t *testing.T) {
		merchant := testMerchant("https://gateway.invalid")
		merchant.SecretKey = "another-secret"
		other := NewMomoService(merchant)
		require.ErrorIs(t, other.VerifyCallback(signedCallbackParams()), ErrInvalidSignature)
	})
}

func TestVerifyCallbackThroughQuery(t *testing.T) {
	service := NewMomoService(testMerchant("https://gateway.invalid"))
	
	query := url.Values{}
	for key, value := range signedCallbackParams() {
		query.Set(key, value)
	}
	
	decoded, err := url.ParseQuery(query.Encode())
	require.NoError(t, err)
	
	params := FlattenValues(decoded)
	require.NoError(t, service.VerifyCallback(params))
	
	result := service.ParseCallback(params)
	require.Equal(t, testOrderID, result.OrderID)
	require.Equal(t, "100000", result.Amount)
	require.True(t, result.Succeeded())
}
