package pix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	type args struct {
		text      string
		maxLength int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "accents", args: args{"João Conceição", 25}, want: "Joao Conceicao"},
		{name: "punctuation", args: args{"São Paulo - SP!", 15}, want: "Sao Paulo  SP"},
		{name: "truncate", args: args{"Florianópolis Santa Catarina", 15}, want: "Florianopolis S"},
		{name: "emoji_and_symbols", args: args{"🎁 Kit Churrasco & Cia.", 30}, want: " Kit Churrasco  Cia"},
		{name: "tabs_and_newlines_dropped", args: args{"Gabriel\te\nMilleny", 25}, want: "GabrieleMilleny"},
		{name: "no_decomposition", args: args{"Øresund ß", 25}, want: "resund "},
		{name: "zero_length", args: args{"Curitiba", 0}, want: ""},
		{name: "empty", args: args{"", 10}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.args.text, tt.args.maxLength))
		})
	}
}

func TestNormalizeLongName(t *testing.T) {
	name := strings.Repeat("Ã", 20) + strings.Repeat("b", 20)
	got := Normalize(name, MaxNameLength)
	assert.Equal(t, MaxNameLength, len(got))
	assert.Equal(t, strings.Repeat("A", 20)+"bbbbb", got)
}
