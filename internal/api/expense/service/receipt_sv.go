package expenseService

import (
	contextPkg "DompetCurhat/pkg/context"
	"DompetCurhat/pkg/groq"
	"DompetCurhat/pkg/log"
	"DompetCurhat/pkg/nlp"
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultStoreName = "Unknown Store"
	noTextNote       = "No text extracted from image."
)

// ScanReceipt runs the OCR capability over a photographed receipt and feeds
// the raw text through the receipt parser. OCR failure is not an error to the
// caller: the result simply carries no total and an explanatory raw text.
func (s *expenseService) ScanReceipt(ctx context.Context, base64Image string) nlp.ReceiptData {
	requestID := contextPkg.GetRequestID(ctx)

	rawText, err := s.ocr.ExtractReceiptText(ctx, base64Image)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Receipt OCR failed")

		return nlp.ReceiptData{
			StoreName: defaultStoreName,
			Items:     []nlp.ReceiptItem{},
			RawText:   "Error: " + err.Error(),
		}
	}

	return s.ParseReceiptText(ctx, rawText)
}

// ParseReceiptText turns raw OCR text into structured receipt data. Empty
// input short-circuits without a remote call; any parse failure hands the raw
// text back with a zero total, signaling the receipt needs to be re-shot or
// entered manually.
func (s *expenseService) ParseReceiptText(ctx context.Context, ocrText string) nlp.ReceiptData {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(ocrText) == "" {
		return nlp.ReceiptData{
			StoreName: defaultStoreName,
			Items:     []nlp.ReceiptItem{},
			RawText:   noTextNote,
		}
	}

	responseText, err := s.completion.Complete(ctx, groq.CompletionRequest{
		System:      receiptParserSystemPrompt,
		User:        ocrText,
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
		ForceJSON:   true,
	})
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Receipt parsing call failed, returning raw text")

		return nlp.ReceiptData{
			StoreName: defaultStoreName,
			Items:     []nlp.ReceiptItem{},
			RawText:   ocrText,
		}
	}

	receipt := parseReceiptResponse(responseText)
	receipt.RawText = ocrText
	return receipt
}

// parseReceiptResponse tries the whole response as JSON first, then falls
// back to brace-depth matching to cut the minimal enclosing object out of
// surrounding prose. Note the depth counter does not know about braces inside
// string literals; a store name containing "{" would desynchronize it.
func parseReceiptResponse(responseText string) nlp.ReceiptData {
	receipt := nlp.ReceiptData{
		StoreName: defaultStoreName,
		Items:     []nlp.ReceiptItem{},
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(responseText)), &data); err != nil {
		jsonStr, ok := recoverJSONObject(responseText)
		if !ok {
			receipt.RawText = responseText
			return receipt
		}
		if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
			receipt.RawText = responseText
			return receipt
		}
	}

	receipt.StoreName = stringField(data, "store_name", defaultStoreName)
	receipt.Date = stringField(data, "date", "")

	if total, ok := intFieldDefault(data, "total_amount", 0); ok {
		receipt.TotalAmount = total
	}

	rawItems, _ := data["items"].([]interface{})
	for _, raw := range rawItems {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		quantity, ok := intFieldDefault(item, "quantity", 1)
		if !ok {
			continue
		}

		price, ok := intFieldDefault(item, "price", 0)
		if !ok {
			continue
		}

		receipt.Items = append(receipt.Items, nlp.ReceiptItem{
			Name:     stringField(item, "name", "Unknown"),
			Quantity: quantity,
			Price:    price,
		})
	}

	return receipt
}

func recoverJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// FormatReceiptConfirmation renders the short "is this right?" summary shown
// to the user before the receipt is saved.
func (s *expenseService) FormatReceiptConfirmation(receipt nlp.ReceiptData) string {
	formattedAmount := "Rp " + formatThousands(receipt.TotalAmount)

	if len(receipt.Items) > 0 {
		names := make([]string, 0, 3)
		for i, item := range receipt.Items {
			if i == 3 {
				break
			}
			names = append(names, item.Name)
		}

		itemsText := strings.Join(names, ", ")
		if len(receipt.Items) > 3 {
			itemsText += fmt.Sprintf(" (+%d lainnya)", len(receipt.Items)-3)
		}

		return fmt.Sprintf("Dari struk %s: %s. Total %s. Bener gak?", receipt.StoreName, itemsText, formattedAmount)
	}

	if receipt.RawText != "" && receipt.TotalAmount == 0 {
		// slice on runes so a multi-byte character is never cut in half
		preview := []rune(receipt.RawText)
		if len(preview) > 50 {
			preview = preview[:50]
		}
		return fmt.Sprintf("Hmm, aku bisa baca teksnya tapi gak nemu totalnya. Coba cek struknya lagi? (Text: %s...)", string(preview))
	}

	return fmt.Sprintf("Dari struk %s: Total %s. Bener gak?", receipt.StoreName, formattedAmount)
}

func formatThousands(n int) string {
	s := strconv.Itoa(n)

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return b.String()
}
