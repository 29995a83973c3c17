package services

import (
	"fmt"
	"log"
	"math/rand"

	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/pkg/payment"
	"agrimart/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// CommissionRate is the platform fee: 1.5% of the order total.
var CommissionRate = decimal.NewFromFloat(0.015)

// OrderService handles payment-order creation, order recording and the
// admin sales report.
type OrderService struct {
	orderRepo repositories.OrderRepository
	gateway   payment.Gateway
	mqClient  *rabbitmq.Client // optional; nil disables event publishing
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, gateway payment.Gateway, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		gateway:   gateway,
		mqClient:  mqClient,
	}
}

// Commission computes the platform fee for an order total, rounded to two
// decimals.
func Commission(totalAmount float64) float64 {
	return decimal.NewFromFloat(totalAmount).Mul(CommissionRate).Round(2).InexactFloat64()
}

// newReceiptID generates a gateway receipt identifier: a fixed prefix plus a
// random integer in [0, 10000). Collisions are possible and unhandled.
func newReceiptID() string {
	return fmt.Sprintf("receipt_%d", rand.Intn(10000))
}

// CreatePaymentOrder registers a payment intent with the gateway and returns
// the gateway order object verbatim.
func (s *OrderService) CreatePaymentOrder(totalAmount float64) (map[string]interface{}, error) {
	return s.gateway.CreateOrder(totalAmount, newReceiptID())
}

// RecordOrder verifies the payment reference against the gateway, computes
// the commission and persists the order. A recorded order is then announced
// on the order-events queue; publish failures are logged, never returned.
func (s *OrderService) RecordOrder(order *models.Order) error {
	if err := s.gateway.VerifyPayment(order.PaymentID); err != nil {
		return err
	}

	order.Commission = Commission(order.TotalAmount)

	if err := s.orderRepo.Create(order); err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderID":    order.ID,
			"buyerEmail": order.BuyerEmail,
			"total":      order.TotalAmount,
			"commission": order.Commission,
			"paymentID":  order.PaymentID,
		}
		if err := s.mqClient.PublishOrderRecorded(event); err != nil {
			log.Printf("Warning: Failed to publish order recorded event for order %s: %v", order.ID, err)
		}
	}

	return nil
}

// SalesReport aggregates the full order collection.
type SalesReport struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalSales      float64 `json:"totalSales"`
	TotalCommission float64 `json:"totalCommission"`
}

// AdminReport sums all recorded orders in memory.
func (s *OrderService) AdminReport() (*SalesReport, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for report: %w", err)
	}

	sales := decimal.Zero
	commission := decimal.Zero
	for _, order := range orders {
		sales = sales.Add(decimal.NewFromFloat(order.TotalAmount))
		commission = commission.Add(decimal.NewFromFloat(order.Commission))
	}

	return &SalesReport{
		TotalOrders:     len(orders),
		TotalSales:      sales.InexactFloat64(),
		TotalCommission: commission.InexactFloat64(),
	}, nil
}
