package pix

import "github.com/shopspring/decimal"

// Details is what Parse reads back from a payload.
type Details struct {
	Amount        string `json:"amount"`
	Name          string `json:"name"`
	City          string `json:"city"`
	PayeeKey      string `json:"payee_key,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Note          string `json:"note,omitempty"`
	Currency      string `json:"currency,omitempty"`
	Country       string `json:"country,omitempty"`
	Valid         bool   `json:"valid"`

	Fields Fields `json:"-"`
}

// AmountDecimal returns the amount as a decimal.
func (d *Details) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(d.Amount)
}

// Parse checks the payload's checksum and then walks its fields in order.
// Nothing is read from a payload that fails IsValid.
func Parse(payload string) (*Details, error) {
	if !IsValid(payload) {
		return nil, ErrInvalidChecksum
	}
	fields, err := Scan(payload)
	if err != nil {
		return nil, err
	}

	d := &Details{Fields: fields, Valid: true}
	for _, req := range []struct {
		tag string
		dst *string
	}{
		{TagAmount, &d.Amount},
		{TagName, &d.Name},
		{TagCity, &d.City},
	} {
		f, ok := fields.Find(req.tag)
		if !ok {
			return nil, &FieldError{Tag: req.tag, Err: ErrFieldNotFound}
		}
		*req.dst = f.Value
	}

	if f, ok := fields.Find(TagCurrency); ok {
		d.Currency = f.Value
	}
	if f, ok := fields.Find(TagCountry); ok {
		d.Country = f.Value
	}
	if f, ok := fields.Find(TagMerchantAccount); ok {
		sub, err := Scan(f.Value)
		if err != nil {
			return nil, &FieldError{Tag: TagMerchantAccount, Err: err}
		}
		if key, ok := sub.Find(TagPayeeKey); ok {
			d.PayeeKey = key.Value
		}
	}
	if f, ok := fields.Find(TagAdditionalData); ok {
		sub, err := Scan(f.Value)
		if err != nil {
			return nil, &FieldError{Tag: TagAdditionalData, Err: err}
		}
		if txid, ok := sub.Find(TagTransactionID); ok {
			d.TransactionID = txid.Value
		}
		if note, ok := sub.Find(TagNote); ok {
			d.Note = note.Value
		}
	}
	return d, nil
}
