package pix

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentRequest carries what a payer needs to send a PIX transfer to the
// beneficiary. TransactionID and Note are optional.
type PaymentRequest struct {
	PayeeKey        string          `json:"payee_key"`
	BeneficiaryName string          `json:"beneficiary_name"`
	BeneficiaryCity string          `json:"beneficiary_city"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	Note            string          `json:"note,omitempty"`
}

// Validate reports every problem that would make Build panic or produce a
// payload outside the BR Code character set. Over-long names, cities and
// notes are not problems: Build truncates them.
func (r PaymentRequest) Validate() error {
	var errs []error
	fail := func(tag, format string, args ...interface{}) {
		errs = append(errs, &FieldError{
			Tag: tag,
			Err: fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...)),
		})
	}

	switch {
	case r.PayeeKey == "":
		fail(TagPayeeKey, "payee key is empty")
	case len(r.PayeeKey) > MaxPayeeKeyLength:
		fail(TagPayeeKey, "payee key is %d characters, maximum is %d", len(r.PayeeKey), MaxPayeeKeyLength)
	case !isPrintableASCII(r.PayeeKey):
		fail(TagPayeeKey, "payee key contains non printable ASCII characters")
	}

	if Normalize(r.BeneficiaryName, MaxNameLength) == "" {
		fail(TagName, "beneficiary name is empty after normalization")
	}
	if Normalize(r.BeneficiaryCity, MaxCityLength) == "" {
		fail(TagCity, "beneficiary city is empty after normalization")
	}

	if r.Amount.IsNegative() {
		fail(TagAmount, "amount %s is negative", r.Amount.String())
	} else if s := formatAmount(r.Amount); len(s) > MaxAmountLength {
		fail(TagAmount, "amount %s is longer than %d characters", s, MaxAmountLength)
	}

	if r.TransactionID != "" && r.TransactionID != DefaultTransactionID {
		if len(r.TransactionID) > MaxTransactionIDLength || !isAlphanumeric(r.TransactionID) {
			fail(TagTransactionID, "transaction id must be 1 to %d letters or digits", MaxTransactionIDLength)
		}
	}

	return errors.Join(errs...)
}

// Build renders the request as a BR Code payload terminated by its CRC.
// The output depends only on r. Callers must check r with Validate first:
// field lengths are counted in bytes, so a non-ASCII key or txid breaks them.
func Build(r PaymentRequest) string {
	txid := r.TransactionID
	if txid == "" {
		txid = DefaultTransactionID
	}
	additional := []Field{NewField(TagTransactionID, txid)}
	if note := Normalize(r.Note, MaxNoteLength); note != "" {
		additional = append(additional, NewField(TagNote, note))
	}

	body := Encode(
		NewField(TagPayloadFormat, PayloadFormatIndicator),
		NewField(TagPointOfInitiation, PointOfInitiationOnce),
		Group(TagMerchantAccount,
			NewField(TagDomain, DomainIdentifier),
			NewField(TagPayeeKey, r.PayeeKey),
		),
		NewField(TagCategoryCode, MerchantCategoryCode),
		NewField(TagCurrency, CurrencyCode),
		NewField(TagAmount, formatAmount(r.Amount)),
		NewField(TagCountry, CountryCode),
		NewField(TagName, Normalize(r.BeneficiaryName, MaxNameLength)),
		NewField(TagCity, Normalize(r.BeneficiaryCity, MaxCityLength)),
		Group(TagAdditionalData, additional...),
	) + crcPrefix

	return body + CRC16(body)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !isPlainRune(r) || r == ' ' {
			return false
		}
	}
	return true
}
