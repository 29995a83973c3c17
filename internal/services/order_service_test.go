package services_test

import (
	"strings"
	"testing"

	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/internal/services"
	"agrimart/pkg/payment"

	"github.com/stretchr/testify/assert"
)

// fakeGateway implements payment.Gateway without a network.
type fakeGateway struct {
	createdAmount  float64
	createdReceipt string
	createErr      error
	verifyErr      error
}

func (g *fakeGateway) CreateOrder(amount float64, receipt string) (map[string]interface{}, error) {
	g.createdAmount = amount
	g.createdReceipt = receipt
	if g.createErr != nil {
		return nil, g.createErr
	}
	return map[string]interface{}{
		"id":       "order_fake123",
		"amount":   payment.ToMinorUnits(amount),
		"currency": payment.Currency,
		"status":   "created",
	}, nil
}

func (g *fakeGateway) VerifyPayment(paymentID string) error {
	return g.verifyErr
}

func TestCommission(t *testing.T) {
	assert.Equal(t, 15.00, services.Commission(1000.00))
	assert.Equal(t, 5.00, services.Commission(333.33)) // 4.99995 rounds up
	assert.Equal(t, 1.5, services.Commission(100))
	assert.Equal(t, 3.0, services.Commission(200))
	assert.Equal(t, 0.0, services.Commission(0))
}

func TestOrderService_CreatePaymentOrder(t *testing.T) {
	gateway := &fakeGateway{}
	service := services.NewOrderService(repositories.NewMockOrderRepository(), gateway, nil)

	order, err := service.CreatePaymentOrder(499.99)
	assert.NoError(t, err)
	assert.Equal(t, "order_fake123", order["id"])
	assert.Equal(t, int64(49999), order["amount"])
	assert.Equal(t, payment.Currency, order["currency"])

	assert.Equal(t, 499.99, gateway.createdAmount)
	assert.True(t, strings.HasPrefix(gateway.createdReceipt, "receipt_"), "receipt %q should carry the fixed prefix", gateway.createdReceipt)
}

func TestOrderService_RecordOrder(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	gateway := &fakeGateway{}
	service := services.NewOrderService(orderRepo, gateway, nil)

	order := &models.Order{
		BuyerEmail:  "buyer@example.com",
		Items:       models.OrderItems{{"productId": "p-1", "quantity": 2.0}},
		TotalAmount: 1000.00,
		PaymentID:   "pay_abc",
	}

	err := service.RecordOrder(order)
	assert.NoError(t, err)
	assert.Equal(t, 15.00, order.Commission)
	assert.NotEmpty(t, order.ID)

	stored, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, 15.00, stored[0].Commission)
}

func TestOrderService_RecordOrderUnverifiedPayment(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	gateway := &fakeGateway{verifyErr: payment.ErrPaymentNotVerified}
	service := services.NewOrderService(orderRepo, gateway, nil)

	order := &models.Order{
		BuyerEmail:  "buyer@example.com",
		Items:       models.OrderItems{{"productId": "p-1"}},
		TotalAmount: 500.00,
		PaymentID:   "pay_forged",
	}

	err := service.RecordOrder(order)
	assert.ErrorIs(t, err, payment.ErrPaymentNotVerified)

	// Nothing is persisted for an unverifiable payment.
	stored, _ := orderRepo.GetAll()
	assert.Empty(t, stored)
}

func TestOrderService_AdminReport(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(orderRepo, &fakeGateway{}, nil)

	// Zero orders: all zeros.
	report, err := service.AdminReport()
	assert.NoError(t, err)
	assert.Equal(t, 0, report.TotalOrders)
	assert.Equal(t, 0.0, report.TotalSales)
	assert.Equal(t, 0.0, report.TotalCommission)

	// Two orders of 100 and 200: totals 300 and 4.5.
	for _, total := range []float64{100, 200} {
		err := service.RecordOrder(&models.Order{
			BuyerEmail:  "buyer@example.com",
			Items:       models.OrderItems{{"productId": "p-1"}},
			TotalAmount: total,
			PaymentID:   "pay_ok",
		})
		assert.NoError(t, err)
	}

	report, err = service.AdminReport()
	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 300.0, report.TotalSales)
	assert.Equal(t, 4.5, report.TotalCommission)
}
