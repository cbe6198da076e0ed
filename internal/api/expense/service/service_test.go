package expenseService

import (
	"context"
	"io"

	"DompetCurhat/pkg/groq"

	"github.com/sirupsen/logrus"
)

type mockCompletion struct {
	response string
	err      error
	calls    int
	lastReq  groq.CompletionRequest
}

func (m *mockCompletion) Complete(_ context.Context, req groq.CompletionRequest) (string, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

type mockOCR struct {
	text  string
	err   error
	calls int
}

func (m *mockOCR) ExtractReceiptText(_ context.Context, _ string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func newTestService(completion *mockCompletion, ocr *mockOCR) *expenseService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &expenseService{
		log:        logger,
		completion: completion,
		ocr:        ocr,
	}
}
