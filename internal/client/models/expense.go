package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CategoryCafe is the category that triggers the cafe spending hint.
const CategoryCafe = "cafe"

// ExpenseRecord is an expense entered elsewhere in the app and auto-posted
// into the coach conversation.
type ExpenseRecord struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
}

func (r ExpenseRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Amount, validation.By(func(any) error {
			if !r.Amount.IsPositive() {
				return validation.NewError("validation_amount_positive", "must be positive")
			}
			return nil
		})),
		validation.Field(&r.Date, validation.Date("2006-01-02")),
		validation.Field(&r.Time, validation.Date("15:04")),
	)
}

// Text renders the user-side line for the record, e.g. "맛나제과 3,500원 카드".
func (r ExpenseRecord) Text() string {
	parts := []string{r.Name, FormatWon(r.Amount) + "원"}
	if m := strings.TrimSpace(r.PaymentMethod); m != "" {
		parts = append(parts, m)
	}
	return strings.Join(parts, " ")
}

// FormatWon formats an amount with thousands separators, dropping the
// fraction when it is zero.
func FormatWon(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(0)
	if !d.Equal(d.Truncate(0)) {
		s = d.Abs().StringFixed(2)
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Profile is the locally persisted user profile.
type Profile struct {
	UserID   int64           `json:"userId"`
	Nickname string          `json:"nickname"`
	AgeGroup string          `json:"ageGroup,omitempty"`
	Job      string          `json:"job,omitempty"`
	Budget   decimal.Decimal `json:"budget"`
}

func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.Nickname, validation.Required, validation.Length(1, 20)),
		validation.Field(&p.Budget, validation.By(func(any) error {
			if p.Budget.IsNegative() {
				return validation.NewError("validation_budget_negative", "must not be negative")
			}
			return nil
		})),
	)
}
