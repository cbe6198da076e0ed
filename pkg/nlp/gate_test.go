package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasExpensePattern(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{
			name:     "too short",
			message:  "hai",
			expected: false,
		},
		{
			name:     "greeting without money",
			message:  "halo bro",
			expected: false,
		},
		{
			name:     "greeting with amount",
			message:  "halo, abis jajan 50k",
			expected: true,
		},
		{
			name:     "bare reaction",
			message:  "wkwk iya bener",
			expected: false,
		},
		{
			name:     "bare complaint about price",
			message:  "mahal banget",
			expected: false,
		},
		{
			name:     "bare emotion",
			message:  "sedih banget",
			expected: false,
		},
		{
			name:     "transaction verb",
			message:  "beli nasi goreng 15k",
			expected: true,
		},
		{
			name:     "cost noun without digits",
			message:  "harga naik semua",
			expected: true,
		},
		{
			name:     "plain big number",
			message:  "tadi keluar 25000 buat parkir",
			expected: true,
		},
		{
			name:     "thanks without money",
			message:  "makasih ya",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasExpensePattern(tt.message))
		})
	}
}

func TestHasMoneyIndicator(t *testing.T) {
	assert.True(t, HasMoneyIndicator("abis 50k"))
	assert.True(t, HasMoneyIndicator("bayar listrik"))
	assert.True(t, HasMoneyIndicator("ongkir mahal"))
	assert.False(t, HasMoneyIndicator("enak banget sumpah"))
}
