package util

import (
	"strings"
	
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatVND chuyển đổi số tiền sang chuỗi định dạng VND.
// Ví dụ: 1000000 -> "1.000.000 ₫".
func FormatVND(amount decimal.Decimal) string {
	// VND dùng dấu chấm để phân cách hàng nghìn
	formatted := strings.ReplaceAll(humanize.Comma(amount.Round(0).IntPart()), ",", ".")
	
	return formatted + " ₫"
}

// Hàm helper để rút gọn nội dung
func TruncateContent(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength]) + "..."
}
