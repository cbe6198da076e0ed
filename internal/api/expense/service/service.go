package expenseService

import (
	"DompetCurhat/pkg/gemini"
	"DompetCurhat/pkg/groq"
	"DompetCurhat/pkg/nlp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IExpenseService interface {
	ExtractExpenses(ctx context.Context, message string) []nlp.ExpenseExtraction
	ValidateExtraction(extraction *nlp.ExpenseExtraction) (bool, string)
	ParseReceiptText(ctx context.Context, ocrText string) nlp.ReceiptData
	ScanReceipt(ctx context.Context, base64Image string) nlp.ReceiptData
	FormatReceiptConfirmation(receipt nlp.ReceiptData) string
}

type expenseService struct {
	log        *logrus.Logger
	completion groq.ICompletion
	ocr        gemini.IGemini
}

func New(
	log *logrus.Logger,
	completion groq.ICompletion,
	ocr gemini.IGemini,
) IExpenseService {
	return &expenseService{
		log:        log,
		completion: completion,
		ocr:        ocr,
	}
}
