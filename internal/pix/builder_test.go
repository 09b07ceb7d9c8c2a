package pix

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func giftRequest() PaymentRequest {
	return PaymentRequest{
		PayeeKey:        "a@b.com",
		BeneficiaryName: "João Silva",
		BeneficiaryCity: "Curitiba",
		Amount:          decimal.RequireFromString("100.5"),
		TransactionID:   "GIFT1",
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		req  PaymentRequest
		want string
	}{
		{
			name: "scenario",
			req:  giftRequest(),
			want: "00020101021226290014br.gov.bcb.pix0107a@b.com5204000053039865406100.505802BR5910Joao Silva6008Curitiba62090505GIFT163043FA7",
		},
		{
			name: "default_txid_with_note",
			req: PaymentRequest{
				PayeeKey:        "noivos@email.com",
				BeneficiaryName: "Gabriel e Milleny",
				BeneficiaryCity: "Curitiba",
				Amount:          decimal.NewFromInt(250),
				Note:            "Kit Utensílios de Madeira",
			},
			want: "00020101021226380014br.gov.bcb.pix0116noivos@email.com5204000053039865406250.005802BR5917Gabriel e Milleny6008Curitiba62360503***5025Kit Utensilios de Madeira6304F972",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.req)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValid(got))
		})
	}
}

func TestBuildScenarioFields(t *testing.T) {
	payload := Build(giftRequest())
	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "5406100.50")
	assert.Contains(t, payload, "5910Joao Silva")
	assert.True(t, IsValid(payload))
}

func TestBuildDeterministic(t *testing.T) {
	req := giftRequest()
	req.Note = "Lua de mel"
	assert.Equal(t, Build(req), Build(req))
}

func TestBuildTruncation(t *testing.T) {
	req := giftRequest()
	req.BeneficiaryName = strings.Repeat("Gabriel Milleny ", 3)[:40]
	req.BeneficiaryCity = "São José dos Pinhais"
	req.Note = strings.Repeat("Parabéns ", 5)[:40]

	d, err := Parse(Build(req))
	require.NoError(t, err)
	assert.Len(t, d.Name, MaxNameLength)
	assert.Equal(t, "Gabriel Milleny Gabriel M", d.Name)
	assert.Equal(t, "Sao Jose dos Pi", d.City)
	assert.Len(t, d.Note, MaxNoteLength)
}

func TestBuildWithoutNote(t *testing.T) {
	for _, note := range []string{"", "!!!"} {
		req := giftRequest()
		req.Note = note
		fields, err := Scan(Build(req))
		require.NoError(t, err)

		additional, ok := fields.Find(TagAdditionalData)
		require.True(t, ok)
		sub, err := Scan(additional.Value)
		require.NoError(t, err)
		assert.Equal(t, Fields{{Tag: TagTransactionID, Value: "GIFT1"}}, sub)
	}
}

func TestBuildFieldOrderAndLengths(t *testing.T) {
	req := giftRequest()
	req.Note = "Cota lua de mel"
	payload := Build(req)

	fields, err := Scan(payload)
	require.NoError(t, err)

	var tags []string
	var rebuilt strings.Builder
	for _, f := range fields {
		tags = append(tags, f.Tag)
		rebuilt.WriteString(f.String())
		if f.Tag == TagMerchantAccount || f.Tag == TagAdditionalData {
			sub, err := Scan(f.Value)
			require.NoError(t, err, f.Tag)
			assert.Equal(t, f.Value, Encode(sub...))
		}
	}
	assert.Equal(t, []string{"00", "01", "26", "52", "53", "54", "58", "59", "60", "62", "63"}, tags)
	assert.Equal(t, payload, rebuilt.String())
}

func TestBuildTamperDetection(t *testing.T) {
	payload := Build(giftRequest())
	for i := 0; i < len(payload)-4; i++ {
		b := []byte(payload)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		assert.False(t, IsValid(string(b)), "tampered at %d", i)
	}
}

func TestBuildAmounts(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "54040.00"},
		{amount: "1200", want: "54071200.00"},
		{amount: "19.999", want: "540520.00"},
		{amount: "0.1", want: "54040.10"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			req := giftRequest()
			req.Amount = decimal.RequireFromString(tt.amount)
			assert.Contains(t, Build(req), tt.want)
		})
	}
}

func TestBuildOversizedKeyPanics(t *testing.T) {
	req := giftRequest()
	req.PayeeKey = strings.Repeat("k", 90)
	assert.Panics(t, func() { Build(req) })
}

func TestPaymentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *PaymentRequest)
		wantTag string
	}{
		{name: "ok", modify: func(r *PaymentRequest) {}},
		{name: "default_txid", modify: func(r *PaymentRequest) { r.TransactionID = DefaultTransactionID }},
		{name: "long_name_is_truncated", modify: func(r *PaymentRequest) { r.BeneficiaryName = strings.Repeat("a", 60) }},
		{name: "empty_key", modify: func(r *PaymentRequest) { r.PayeeKey = "" }, wantTag: TagPayeeKey},
		{name: "long_key", modify: func(r *PaymentRequest) { r.PayeeKey = strings.Repeat("k", 78) }, wantTag: TagPayeeKey},
		{name: "non_ascii_key", modify: func(r *PaymentRequest) { r.PayeeKey = "joão@b.com" }, wantTag: TagPayeeKey},
		{name: "empty_name", modify: func(r *PaymentRequest) { r.BeneficiaryName = "***" }, wantTag: TagName},
		{name: "empty_city", modify: func(r *PaymentRequest) { r.BeneficiaryCity = "" }, wantTag: TagCity},
		{name: "negative_amount", modify: func(r *PaymentRequest) { r.Amount = decimal.NewFromInt(-1) }, wantTag: TagAmount},
		{name: "huge_amount", modify: func(r *PaymentRequest) { r.Amount = decimal.RequireFromString("12345678901.00") }, wantTag: TagAmount},
		{name: "txid_symbols", modify: func(r *PaymentRequest) { r.TransactionID = "GIFT-1" }, wantTag: TagTransactionID},
		{name: "txid_too_long", modify: func(r *PaymentRequest) { r.TransactionID = strings.Repeat("A", 26) }, wantTag: TagTransactionID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := giftRequest()
			tt.modify(&req)
			err := req.Validate()
			if tt.wantTag == "" {
				require.NoError(t, err)
				assert.NotPanics(t, func() { Build(req) })
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantTag, fe.Tag)
		})
	}
}
