package expenseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractionResponse(t *testing.T) {
	t.Run("clean array", func(t *testing.T) {
		items := parseExtractionResponse(`[{"item_name": "Kopi", "amount": 25000}]`)
		require.Len(t, items, 1)
		assert.Equal(t, "Kopi", items[0]["item_name"])
	})

	t.Run("array buried in prose", func(t *testing.T) {
		response := `Berikut hasil ekstraksinya:
[{"item_name": "Kopi", "amount": 25000}, {"item_name": "Roti", "amount": 10000}]
Semoga membantu!`

		items := parseExtractionResponse(response)
		require.Len(t, items, 2)
		assert.Equal(t, "Roti", items[1]["item_name"])
	})

	t.Run("bare object wrapped as single candidate", func(t *testing.T) {
		items := parseExtractionResponse(`{"item_name": "Bensin", "amount": 50000}`)
		require.Len(t, items, 1)
		assert.Equal(t, "Bensin", items[0]["item_name"])
	})

	t.Run("no json at all", func(t *testing.T) {
		assert.Nil(t, parseExtractionResponse("maaf, aku gak nemu transaksi di pesan itu"))
	})

	t.Run("malformed array", func(t *testing.T) {
		assert.Nil(t, parseExtractionResponse(`[{"item_name": "Kopi", `))
	})
}

func TestIntField(t *testing.T) {
	item := map[string]interface{}{
		"number":  float64(25000),
		"numeric": "12000",
		"garbage": "dua puluh ribu",
		"nothing": nil,
	}

	n, ok := intField(item, "number")
	assert.True(t, ok)
	assert.Equal(t, 25000, n)

	n, ok = intField(item, "numeric")
	assert.True(t, ok)
	assert.Equal(t, 12000, n)

	_, ok = intField(item, "garbage")
	assert.False(t, ok)

	_, ok = intField(item, "nothing")
	assert.False(t, ok)

	_, ok = intField(item, "absent")
	assert.False(t, ok)
}

func TestIntFieldDefault(t *testing.T) {
	item := map[string]interface{}{
		"present": float64(3),
		"garbage": "tiga",
	}

	n, ok := intFieldDefault(item, "present", 1)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = intFieldDefault(item, "absent", 1)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = intFieldDefault(item, "garbage", 1)
	assert.False(t, ok)
}

func TestFloatFieldDefault(t *testing.T) {
	item := map[string]interface{}{
		"score":   -0.5,
		"numeric": "0.7",
		"garbage": "tinggi",
	}

	f, ok := floatFieldDefault(item, "score", 0.0)
	assert.True(t, ok)
	assert.InDelta(t, -0.5, f, 0.001)

	f, ok = floatFieldDefault(item, "numeric", 0.0)
	assert.True(t, ok)
	assert.InDelta(t, 0.7, f, 0.001)

	f, ok = floatFieldDefault(item, "absent", 0.7)
	assert.True(t, ok)
	assert.InDelta(t, 0.7, f, 0.001)

	_, ok = floatFieldDefault(item, "garbage", 0.0)
	assert.False(t, ok)
}
