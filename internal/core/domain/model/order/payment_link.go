package order

import (
	"fmt"
	"net/url"
	"strings"
)

// NewUPIPaymentLink builds the upi://pay deep link shown at checkout. The
// customer pays outside the system; an administrator later marks the order
// Paid by hand.
func NewUPIPaymentLink(payeeVPA, payeeName string, amount int) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=INR",
		upiEscape(payeeVPA), upiEscape(payeeName), amount)
}

// upiEscape query-escapes a value but keeps '@', which UPI handles expect verbatim.
func upiEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%40", "@")
}
