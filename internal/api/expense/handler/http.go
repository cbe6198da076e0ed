package expenseHandler

import (
	expenseService "DompetCurhat/internal/api/expense/service"
	"DompetCurhat/internal/middleware"
	"DompetCurhat/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	expenseService expenseService.IExpenseService
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	es expenseService.IExpenseService,
	utils utils.IUtils,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: es,
		log:            log,
		validator:      validator,
		middleware:     middleware,
		utils:          utils,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	expense := srv.Group("/expense")
	expense.Post("/extract", h.ExtractExpenses)

	receipt := expense.Group("/receipt")
	receipt.Post("/scan", h.ScanReceipt)
	receipt.Post("/parse", h.ParseReceipt)
}
