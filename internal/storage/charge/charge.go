package charge

import (
	"fmt"
	"time"

	"github.com/akashipov/brcode/internal/pix"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beneficiary receives the money. Empty fields of a ChargeRequest fall back
// to the configured default beneficiary.
type Beneficiary struct {
	PayeeKey string `json:"payee_key,omitempty"`
	Name     string `json:"name,omitempty"`
	City     string `json:"city,omitempty"`
}

type ChargeRequest struct {
	Beneficiary
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Note          string          `json:"note,omitempty"`
}

type Charge struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	PayeeKey      string          `json:"payee_key"`
	Name          string          `json:"name"`
	City          string          `json:"city"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	Note          string          `json:"note,omitempty"`
	Payload       string          `json:"payload"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentRequest merges req over defaults.
func (req ChargeRequest) PaymentRequest(defaults Beneficiary) pix.PaymentRequest {
	b := defaults
	if req.PayeeKey != "" {
		b.PayeeKey = req.PayeeKey
	}
	if req.Name != "" {
		b.Name = req.Name
	}
	if req.City != "" {
		b.City = req.City
	}
	return pix.PaymentRequest{
		PayeeKey:        b.PayeeKey,
		BeneficiaryName: b.Name,
		BeneficiaryCity: b.City,
		Amount:          req.Amount,
		TransactionID:   req.TransactionID,
		Note:            req.Note,
	}
}

// NewCharge validates the request and builds its payload. The stored name,
// city and note are the normalized values carried by the payload.
func NewCharge(req ChargeRequest, defaults Beneficiary, now time.Time) (*Charge, error) {
	pr := req.PaymentRequest(defaults)
	err := pr.Validate()
	if err != nil {
		return nil, err
	}
	payload := pix.Build(pr)
	details, err := pix.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("Problem with reading back built payload: %w", err)
	}
	amount, err := details.AmountDecimal()
	if err != nil {
		return nil, fmt.Errorf("Problem with amount of built payload: %w", err)
	}
	return &Charge{
		ID:            uuid.NewString(),
		TransactionID: details.TransactionID,
		PayeeKey:      details.PayeeKey,
		Name:          details.Name,
		City:          details.City,
		Amount:        amount,
		AmountDisplay: pix.FormatBRL(amount),
		Note:          details.Note,
		Payload:       payload,
		CreatedAt:     now.UTC(),
	}, nil
}
