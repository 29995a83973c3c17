package handlers

import (
	"errors"
	"log"

	"agrimart/internal/models"
	"agrimart/internal/services"
	"agrimart/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for payment orders, order recording and
// the admin sales report.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/payment", h.HandleCreatePaymentOrder)
	orderRoutes.Post("/", h.HandleRecordOrder)
	orderRoutes.Get("/report", h.HandleAdminReport)
}

// PaymentOrderRequest represents the request body for payment-order creation.
type PaymentOrderRequest struct {
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
}

// HandleCreatePaymentOrder registers a payment intent with the gateway and
// returns the gateway order object verbatim.
func (h *OrderHandler) HandleCreatePaymentOrder(c *fiber.Ctx) error {
	var req PaymentOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A positive totalAmount is required",
		})
	}

	order, err := h.service.CreatePaymentOrder(req.TotalAmount)
	if err != nil {
		log.Printf("Error creating payment order: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to create Razorpay order",
		})
	}

	return c.JSON(order)
}

// HandleRecordOrder verifies the payment reference and persists the completed
// purchase with its commission.
func (h *OrderHandler) HandleRecordOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		log.Printf("Error parsing record-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All fields are required",
		})
	}

	if err := h.service.RecordOrder(&order); err != nil {
		if errors.Is(err, payment.ErrPaymentNotVerified) {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"error": "Payment could not be verified",
			})
		}
		log.Printf("Error recording order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order saved successfully",
		"order":   order,
	})
}

// HandleAdminReport aggregates all recorded orders into the sales report.
func (h *OrderHandler) HandleAdminReport(c *fiber.Ctx) error {
	report, err := h.service.AdminReport()
	if err != nil {
		log.Printf("Error building admin report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not get admin stats",
		})
	}
	return c.JSON(report)
}
