package expenseService

import (
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Matches a flat JSON object with no nested braces, for responses where the
// model emitted a single object instead of the required array.
var bareObjectPattern = regexp.MustCompile(`(?s)\{[^}]+\}`)

// parseExtractionResponse recovers candidate transactions from a possibly
// noisy completion: the widest array substring first, then a bare object
// wrapped as a one-element list, otherwise nothing.
func parseExtractionResponse(responseText string) []map[string]interface{} {
	text := strings.TrimSpace(responseText)

	if start := strings.Index(text, "["); start != -1 {
		if end := strings.LastIndex(text, "]"); end > start {
			var items []map[string]interface{}
			if err := json.Unmarshal([]byte(text[start:end+1]), &items); err == nil {
				return items
			}
		}
	}

	if match := bareObjectPattern.FindString(text); match != "" {
		var item map[string]interface{}
		if err := json.Unmarshal([]byte(match), &item); err == nil {
			return []map[string]interface{}{item}
		}
	}

	return nil
}

func stringField(item map[string]interface{}, key, fallback string) string {
	if v, ok := item[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// intField requires the key to be present and coercible. Missing, null or
// garbage values all report false so the caller can skip the candidate.
func intField(item map[string]interface{}, key string) (int, bool) {
	v, ok := item[key]
	if !ok || v == nil {
		return 0, false
	}
	return coerceInt(v)
}

// intFieldDefault is intField with a default for absent keys; a present but
// uncoercible value still reports false.
func intFieldDefault(item map[string]interface{}, key string, fallback int) (int, bool) {
	v, ok := item[key]
	if !ok || v == nil {
		return fallback, true
	}
	return coerceInt(v)
}

func floatFieldDefault(item map[string]interface{}, key string, fallback float64) (float64, bool) {
	v, ok := item[key]
	if !ok || v == nil {
		return fallback, true
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
