package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/internal/domain/service"
	"rebooks/pkg/errors"
	"rebooks/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	gateway     service.PaymentGatewayService
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	gateway service.PaymentGatewayService,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
	}
}

type CreateIntentInput struct {
	OrderID string  `json:"order_id"`
	Price   float64 `json:"price"`
}

// CreateIntent opens a payment intent with the processor for the order's
// price, converted to minor currency units.
func (uc *PaymentUseCase) CreateIntent(ctx context.Context, callerEmail string, input CreateIntentInput) (*service.PaymentIntent, error) {
	price := input.Price
	if input.OrderID != "" {
		order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
		if err != nil {
			return nil, err
		}
		if order.UserEmail != callerEmail {
			return nil, errors.Forbidden("This order belongs to another user", nil)
		}
		if order.Paid {
			return nil, errors.BadRequest("Order is already paid", nil)
		}
		price = order.Price
	}
	if price <= 0 {
		return nil, errors.BadRequest("Invalid price", nil)
	}

	intent, err := uc.gateway.CreateIntent(ctx, service.PaymentIntentRequest{
		OrderID:  input.OrderID,
		Amount:   int64(math.Round(price * 100)),
		Currency: "usd",
		Email:    callerEmail,
	})
	if err != nil {
		logger.Error("Payment intent creation failed: %v", err)
		return nil, errors.Internal("Failed to create payment intent", err)
	}

	return intent, nil
}

type RecordPaymentInput struct {
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

// Record stores the completed payment. The repository marks the order and
// product paid in the same transaction.
func (uc *PaymentUseCase) Record(ctx context.Context, callerEmail string, input RecordPaymentInput) (*entity.Payment, error) {
	order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserEmail != callerEmail {
		return nil, errors.Forbidden("This order belongs to another user", nil)
	}

	payment := &entity.Payment{
		ID:            uuid.New().String(),
		OrderID:       order.ID,
		ProductID:     order.ProductID,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
		Email:         callerEmail,
	}

	if err := uc.paymentRepo.Record(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment %s recorded for order %s", payment.ID, order.ID)
	return payment, nil
}
