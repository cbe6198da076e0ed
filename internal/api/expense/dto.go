package expense

import "DompetCurhat/pkg/nlp"

type ExtractRequest struct {
	Message string `json:"message" validate:"required"`
}

type ExtractResponse struct {
	ExpenseDetected bool                    `json:"expense_detected"`
	Extractions     []nlp.ExpenseExtraction `json:"extractions"`
}

type ReceiptScanRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

// Text may be empty: a failed OCR pass still gets a well-formed default
// receipt back instead of an error.
type ReceiptParseRequest struct {
	Text string `json:"text"`
}

type ReceiptResponse struct {
	Data         nlp.ReceiptData `json:"data"`
	Confirmation string          `json:"confirmation,omitempty"`
}
