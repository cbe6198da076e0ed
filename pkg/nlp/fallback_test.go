package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmountFallback(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAmount int
		wantOK     bool
	}{
		{
			name:       "k suffix",
			input:      "abis 50k di warkop",
			wantAmount: 50000,
			wantOK:     true,
		},
		{
			name:       "rb suffix",
			input:      "jajan 12rb",
			wantAmount: 12000,
			wantOK:     true,
		},
		{
			name:       "jt suffix",
			input:      "kredit motor 3jt",
			wantAmount: 3000000,
			wantOK:     true,
		},
		{
			name:       "plain digits",
			input:      "bayar 15000 cash",
			wantAmount: 15000,
			wantOK:     true,
		},
		{
			name:       "suffixed amount beats bare digits",
			input:      "dapet 2000 poin terus beli 50k",
			wantAmount: 50000,
			wantOK:     true,
		},
		{
			name:   "no digits at all",
			input:  "gak ada angka di sini",
			wantOK: false,
		},
		{
			name:   "short digits without suffix",
			input:  "beli 3 gorengan",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := ExtractAmountFallback(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantAmount, amount)
			}
		})
	}
}
