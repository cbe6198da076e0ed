package expenseService

import (
	contextPkg "DompetCurhat/pkg/context"
	"DompetCurhat/pkg/groq"
	"DompetCurhat/pkg/log"
	"DompetCurhat/pkg/nlp"
	"context"
	"strings"
)

const (
	extractionTemperature = 0.1
	extractionMaxTokens   = 600

	defaultConfidence = 0.7

	// Confidence for the deterministic fallback: lower when the remote call
	// itself failed, slightly higher when the call worked but produced
	// nothing parseable.
	fallbackConfidenceOnError = 0.3
	fallbackConfidenceOnEmpty = 0.4

	unknownItemName = "Item tidak terdeteksi"
	genericItemName = "Pengeluaran"
	defaultItemName = "Unknown Item"
)

// ExtractExpenses turns one informal chat message into zero or more validated
// expense records. Gate rejection and every remote failure mode end in either
// an empty slice or a single low-confidence fallback extraction; no error
// leaves this method.
func (s *expenseService) ExtractExpenses(ctx context.Context, message string) []nlp.ExpenseExtraction {
	requestID := contextPkg.GetRequestID(ctx)

	if !nlp.HasExpensePattern(message) {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
		}).Debug("Message gated out as casual chat, skipping extraction call")
		return []nlp.ExpenseExtraction{}
	}

	normalized := nlp.NormalizeAmounts(message)

	responseText, err := s.completion.Complete(ctx, groq.CompletionRequest{
		System:      accountantSystemPrompt,
		User:        normalized,
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
	})
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Extraction call failed, falling back to amount regex")

		if amount, ok := nlp.ExtractAmountFallback(message); ok {
			emotion, sentiment := nlp.DetectEmotion(message)
			return []nlp.ExpenseExtraction{{
				ItemName:       unknownItemName,
				Amount:         amount,
				Category:       nlp.CategoryLainnya,
				Emotion:        emotion,
				SentimentScore: sentiment,
				AIConfidence:   fallbackConfidenceOnError,
			}}
		}
		return []nlp.ExpenseExtraction{}
	}

	candidates := parseExtractionResponse(responseText)
	if len(candidates) == 0 {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
		}).Warn("No usable JSON in extraction response, falling back to amount regex")

		if amount, ok := nlp.ExtractAmountFallback(message); ok {
			return []nlp.ExpenseExtraction{{
				ItemName:       genericItemName,
				Amount:         amount,
				Category:       nlp.CategoryLainnya,
				Emotion:        nlp.EmotionNetral,
				SentimentScore: 0.0,
				AIConfidence:   fallbackConfidenceOnEmpty,
			}}
		}
		return []nlp.ExpenseExtraction{}
	}

	detectedEmotion, detectedSentiment := nlp.DetectEmotion(message)

	expenses := make([]nlp.ExpenseExtraction, 0, len(candidates))
	for _, item := range candidates {
		amount, ok := intField(item, "amount")
		if !ok || amount == 0 {
			continue
		}

		sentiment, ok := floatFieldDefault(item, "sentiment_score", 0.0)
		if !ok {
			continue
		}

		confidence, ok := floatFieldDefault(item, "ai_confidence", defaultConfidence)
		if !ok {
			continue
		}

		// The model defaulting to Netral is not a strong signal; when the
		// message itself reads angry or sad, the message-level emotion wins.
		emotion := nlp.MapEmotion(stringField(item, "emotion", string(nlp.EmotionNetral)))
		if emotion == nlp.EmotionNetral && detectedEmotion != nlp.EmotionNetral {
			emotion = detectedEmotion
			sentiment = detectedSentiment
		}

		expenses = append(expenses, nlp.ExpenseExtraction{
			ItemName:       stringField(item, "item_name", defaultItemName),
			Amount:         amount,
			Category:       nlp.MapCategory(stringField(item, "category", string(nlp.CategoryLainnya))),
			Emotion:        emotion,
			SentimentScore: sentiment,
			AIConfidence:   confidence,
		})
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"candidates": len(candidates),
		"validated":  len(expenses),
	}).Info("Expense extraction finished")

	return expenses
}

// ValidateExtraction flags results that need user confirmation before being
// persisted by the caller.
func (s *expenseService) ValidateExtraction(extraction *nlp.ExpenseExtraction) (bool, string) {
	if extraction == nil {
		return false, "No expense detected"
	}

	var issues []string

	if extraction.Amount == 0 {
		issues = append(issues, "nominal tidak terdeteksi")
	}

	if extraction.ItemName == unknownItemName {
		issues = append(issues, "item tidak terdeteksi")
	}

	if extraction.AIConfidence < 0.5 {
		issues = append(issues, "confidence rendah")
	}

	if len(issues) > 0 {
		return false, "Perlu konfirmasi: " + strings.Join(issues, ", ")
	}

	return true, "Extraction validated successfully"
}
