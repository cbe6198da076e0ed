package expenseHandler

import (
	"DompetCurhat/internal/api/expense"
	contextPkg "DompetCurhat/pkg/context"
	"DompetCurhat/pkg/handlerUtil"
	"DompetCurhat/pkg/log"
	"DompetCurhat/pkg/utils"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *ExpenseHandler) ExtractExpenses(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing expense extraction request")

	var req expense.ExtractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	extractions := h.expenseService.ExtractExpenses(c, req.Message)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"extracted":  len(extractions),
		}).Info("Expense extraction successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, expense.ExtractResponse{
			ExpenseDetected: len(extractions) > 0,
			Extractions:     extractions,
		})
	}
}

func (h *ExpenseHandler) ScanReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing receipt scan request")

	var base64Image string

	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			domainErr := expense.ErrInvalidFileType
			if errors.Is(err, utils.ErrFileTooLarge) {
				domainErr = expense.ErrFileTooLarge
			}
			return errHandler.Handle(ctx, requestID, domainErr, ctx.Path(), "validate_image_file")
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		base64Image, err = h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_to_base64")
		}
	} else {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Debug("Processing JSON request")

		var req expense.ReceiptScanRequest
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		base64Image = req.ImageBase64
	}

	receipt := h.expenseService.ScanReceipt(c, base64Image)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"store":      receipt.StoreName,
			"total":      receipt.TotalAmount,
			"items":      len(receipt.Items),
		}).Info("Receipt scan successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, expense.ReceiptResponse{
			Data:         receipt,
			Confirmation: h.expenseService.FormatReceiptConfirmation(receipt),
		})
	}
}

func (h *ExpenseHandler) ParseReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing receipt parse request")

	var req expense.ReceiptParseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	receipt := h.expenseService.ParseReceiptText(c, req.Text)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"store":      receipt.StoreName,
			"total":      receipt.TotalAmount,
			"items":      len(receipt.Items),
		}).Info("Receipt parse successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, expense.ReceiptResponse{
			Data:         receipt,
			Confirmation: h.expenseService.FormatReceiptConfirmation(receipt),
		})
	}
}
