package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Casual chat patterns, checked in order against the trimmed lowercase
// message. A match means the message is small talk unless it also carries a
// money indicator.
var casualPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(hai|halo|hi|hey|yo)\b`),
	regexp.MustCompile(`^(oke|ok|siap|mantap|nice|wkwk|haha|lol|wkwkwk)\b`),
	regexp.MustCompile(`^(makasih|thanks|thx|terima kasih)`),
	regexp.MustCompile(`^(iya|yoi|yup|yes|ya|bener|betul)`),
	regexp.MustCompile(`^(ga|gak|nggak|tidak|no|nope)`),
	regexp.MustCompile(`^(kenyang|puas|enak|mantul|mantep)`),
	regexp.MustCompile(`^(mahal|murah)\s*(bgt|banget|amat)?$`),
	regexp.MustCompile(`^gimana|bagaimana|apa kabar`),
	regexp.MustCompile(`^(sedih|seneng|senang|kesel|marah)\s*(bgt|banget)?$`),
	regexp.MustCompile(`mana ada`),
}

var moneyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*[kr]`),
	regexp.MustCompile(`\d+\s*rb`),
	regexp.MustCompile(`\d+\s*ribu`),
	regexp.MustCompile(`\d+\s*jt`),
	regexp.MustCompile(`\d+\s*juta`),
	regexp.MustCompile(`\d{4,}`),
	regexp.MustCompile(`(beli|bayar|abis|habis|keluar|spend)`),
	regexp.MustCompile(`(harga|biaya|ongkir|ongkos)`),
}

// HasExpensePattern decides whether a message is worth an extraction call at
// all. Greetings, reactions and bare emotions are filtered out unless they
// also mention money.
func HasExpensePattern(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))

	if utf8.RuneCountInString(msg) < 5 {
		return false
	}

	for _, pattern := range casualPatterns {
		if pattern.MatchString(msg) {
			return HasMoneyIndicator(msg)
		}
	}

	return HasMoneyIndicator(msg)
}

// HasMoneyIndicator reports whether the message carries an amount shorthand,
// a 4+ digit number, a transaction verb or a cost noun.
func HasMoneyIndicator(message string) bool {
	msg := strings.ToLower(message)

	for _, pattern := range moneyPatterns {
		if pattern.MatchString(msg) {
			return true
		}
	}

	return false
}
