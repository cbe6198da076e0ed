package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

type suffixRule struct {
	pattern    *regexp.Regexp
	multiplier int
}

var fallbackSuffixRules = []suffixRule{
	{regexp.MustCompile(`(\d+)\s*k\b`), 1000},
	{regexp.MustCompile(`(\d+)\s*rb\b`), 1000},
	{regexp.MustCompile(`(\d+)\s*ribu\b`), 1000},
	{regexp.MustCompile(`(\d+)\s*jt\b`), 1000000},
	{regexp.MustCompile(`(\d+)\s*juta\b`), 1000000},
}

var (
	decimalMillionPattern = regexp.MustCompile(`(\d+)[.,](\d+)\s*(jt|juta)\b`)
	plainNumberPattern    = regexp.MustCompile(`\d{4,}`)
)

// ExtractAmountFallback is the deterministic last resort when the model call
// fails or returns nothing usable. It tries suffixed amounts, then decimal
// millions, then any bare run of 4+ digits, returning the first hit.
func ExtractAmountFallback(text string) (int, bool) {
	msg := strings.ToLower(text)

	for _, rule := range fallbackSuffixRules {
		if sub := rule.pattern.FindStringSubmatch(msg); sub != nil {
			n, err := strconv.Atoi(sub[1])
			if err != nil {
				continue
			}
			return n * rule.multiplier, true
		}
	}

	if sub := decimalMillionPattern.FindStringSubmatch(msg); sub != nil {
		val, err := strconv.ParseFloat(sub[1]+"."+sub[2], 64)
		if err == nil {
			return int(val * 1000000), true
		}
	}

	if match := plainNumberPattern.FindString(msg); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			return n, true
		}
	}

	return 0, false
}
