package validator

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

func ValidateString(value string, minLength int, maxLength int) error {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}
	
	return nil
}

func ValidateFullName(value string) error {
	if err := ValidateString(value, 2, 100); err != nil {
		return err
	}
	
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("must contain only letters or spaces")
		}
	}
	
	return nil
}

// ValidateOrderInfo giới hạn độ dài nội dung đơn hàng gửi sang MoMo
func ValidateOrderInfo(value string) error {
	return ValidateString(value, 0, 255)
}
