package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCategory(t *testing.T) {
	assert.Equal(t, CategoryMakananMinuman, MapCategory("Food"))
	assert.Equal(t, CategoryMakananMinuman, MapCategory("makanan"))
	assert.Equal(t, CategoryTransport, MapCategory("Transportasi"))
	assert.Equal(t, CategoryBelanja, MapCategory("shopping"))
	assert.Equal(t, CategoryLainnya, MapCategory("cryptocurrency"))
	assert.Equal(t, CategoryLainnya, MapCategory(""))
}

func TestMapEmotion(t *testing.T) {
	assert.Equal(t, EmotionMarah, MapEmotion("angry"))
	assert.Equal(t, EmotionSedih, MapEmotion("Sad"))
	assert.Equal(t, EmotionSenang, MapEmotion("bahagia"))
	assert.Equal(t, EmotionStress, MapEmotion("stressed"))
	assert.Equal(t, EmotionNetral, MapEmotion("confused"))
	assert.Equal(t, EmotionNetral, MapEmotion(""))
}
