package nlp

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

type rewriteRule struct {
	pattern *regexp.Regexp
	rewrite func(sub []string) (string, bool)
}

// Rule order matters: thousand suffixes first so "25k" is rewritten before any
// jt rule can see the digits, and decimal-jt before bare-jt so "2.5jt" never
// loses its fraction.
var amountRules = []rewriteRule{
	{regexp.MustCompile(`(\d+)\s*k\b`), timesThousand},
	{regexp.MustCompile(`(\d+)\s*rb\b`), timesThousand},
	{regexp.MustCompile(`(\d+)\s*ribu\b`), timesThousand},
	{regexp.MustCompile(`(\d+)[.,](\d+)\s*jt\b`), timesMillionDecimal},
	{regexp.MustCompile(`(\d+)[.,](\d+)\s*juta\b`), timesMillionDecimal},
	{regexp.MustCompile(`(\d+)\s*jt\b`), timesMillion},
	{regexp.MustCompile(`(\d+)\s*juta\b`), timesMillion},
}

// NormalizeAmounts rewrites informal Rupiah shorthand into plain digit
// strings: "25rb" and "25k" become "25000", "2.5jt" becomes "2500000".
// Bare digit runs are left alone. The result is lowercased.
func NormalizeAmounts(text string) string {
	result := strings.ToLower(text)

	for _, rule := range amountRules {
		result = rule.pattern.ReplaceAllStringFunc(result, func(match string) string {
			sub := rule.pattern.FindStringSubmatch(match)
			if replaced, ok := rule.rewrite(sub); ok {
				return replaced
			}
			return match
		})
	}

	return result
}

func timesThousand(sub []string) (string, bool) {
	n, err := strconv.Atoi(sub[1])
	if err != nil {
		return "", false
	}
	return strconv.Itoa(n * 1000), true
}

func timesMillion(sub []string) (string, bool) {
	n, err := strconv.Atoi(sub[1])
	if err != nil {
		return "", false
	}
	return strconv.Itoa(n * 1000000), true
}

// timesMillionDecimal handles "2.5jt" style expressions. The fractional part
// is scaled against the full multiplier so "2.05jt" yields 2050000, not
// 2500000.
func timesMillionDecimal(sub []string) (string, bool) {
	whole, err := strconv.Atoi(sub[1])
	if err != nil {
		return "", false
	}

	frac, err := strconv.ParseFloat("0."+sub[2], 64)
	if err != nil {
		return "", false
	}

	val := whole*1000000 + int(math.Round(frac*1000000))
	return strconv.Itoa(val), true
}
