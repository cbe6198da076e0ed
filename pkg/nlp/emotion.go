package nlp

import "strings"

type emotionRule struct {
	words     []string
	label     EmotionLabel
	sentiment float64
}

// Checked top to bottom, first matching vocabulary wins. Anger beats sadness
// beats stress beats happiness beats hunger.
var emotionRules = []emotionRule{
	{
		words: []string{"anjing", "anjir", "bangsat", "babi", "kesel", "kesal",
			"emosi", "bete", "bt", "marah", "goblok", "tolol", "kampret",
			"sialan", "sial", "nyebelin", "sebel", "jengkel"},
		label:     EmotionMarah,
		sentiment: -0.6,
	},
	{
		words: []string{"sedih", "nyesel", "menyesal", "kecewa", "galau", "nangis",
			"sakit hati", "patah hati", "gagal", "rugi", "boros"},
		label:     EmotionSedih,
		sentiment: -0.5,
	},
	{
		words: []string{"stress", "stres", "capek", "cape", "lelah", "pusing",
			"mumet", "ribet", "deadline", "lembur", "overtime", "sibuk"},
		label:     EmotionStress,
		sentiment: -0.4,
	},
	{
		words: []string{"seneng", "senang", "happy", "yey", "yeay", "hore", "asik",
			"mantap", "mantul", "keren", "seru", "bagus", "puas", "worth"},
		label:     EmotionSenang,
		sentiment: 0.7,
	},
	{
		words:     []string{"lapar", "laper", "hungry", "pengen makan", "kelaparan"},
		label:     EmotionLapar,
		sentiment: 0.1,
	},
}

// DetectEmotion maps Indonesian slang to one emotion label and its fixed
// sentiment score. Returns Netral when nothing in the vocabulary matches.
func DetectEmotion(message string) (EmotionLabel, float64) {
	msg := strings.ToLower(message)

	for _, rule := range emotionRules {
		for _, word := range rule.words {
			if strings.Contains(msg, word) {
				return rule.label, rule.sentiment
			}
		}
	}

	return EmotionNetral, 0.0
}
