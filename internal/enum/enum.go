package enum

// ── Order lifecycle (one-way: Pending → Paid) ──

const (
	OrderStatusPending = "Pending"
	OrderStatusPaid    = "Paid"
)

const (
	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
)

// ── Display languages carried in localized text fields ──

const (
	LangEnglish = "en"
	LangUrdu    = "ur"
	LangArabic  = "ar"
)

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusPaid
}

// IsValidPaymentMethod reports whether m is a supported payment method.
func IsValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}
