package nlp

import "strings"

// Lowercase synonym tables keeping the label sets closed. Unknown strings fall
// through to Lainnya / Netral.
var categorySynonyms = map[string]ExpenseCategory{
	"makanan & minuman": CategoryMakananMinuman,
	"makanan":           CategoryMakananMinuman,
	"minuman":           CategoryMakananMinuman,
	"food":              CategoryMakananMinuman,
	"transport":         CategoryTransport,
	"transportasi":      CategoryTransport,
	"fashion":           CategoryFashion,
	"pakaian":           CategoryFashion,
	"hiburan":           CategoryHiburan,
	"entertainment":     CategoryHiburan,
	"belanja":           CategoryBelanja,
	"shopping":          CategoryBelanja,
	"tagihan":           CategoryTagihan,
	"bill":              CategoryTagihan,
	"lainnya":           CategoryLainnya,
	"other":             CategoryLainnya,
}

var emotionSynonyms = map[string]EmotionLabel{
	"marah":    EmotionMarah,
	"angry":    EmotionMarah,
	"kesel":    EmotionMarah,
	"sedih":    EmotionSedih,
	"sad":      EmotionSedih,
	"nyesel":   EmotionSedih,
	"senang":   EmotionSenang,
	"happy":    EmotionSenang,
	"bahagia":  EmotionSenang,
	"lapar":    EmotionLapar,
	"hungry":   EmotionLapar,
	"stress":   EmotionStress,
	"stressed": EmotionStress,
	"capek":    EmotionStress,
	"netral":   EmotionNetral,
	"neutral":  EmotionNetral,
	"biasa":    EmotionNetral,
}

func MapCategory(category string) ExpenseCategory {
	if mapped, ok := categorySynonyms[strings.ToLower(category)]; ok {
		return mapped
	}
	return CategoryLainnya
}

func MapEmotion(emotion string) EmotionLabel {
	if mapped, ok := emotionSynonyms[strings.ToLower(emotion)]; ok {
		return mapped
	}
	return EmotionNetral
}
