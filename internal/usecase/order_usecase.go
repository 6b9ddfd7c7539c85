package usecase

import (
	"context"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
	"rebooks/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
	}
}

type PlaceOrderInput struct {
	ProductID    string `json:"product_id"`
	MeetingPoint string `json:"meeting_point"`
	Phone        string `json:"phone"`
}

// Place books a product for the buyer. The repository rejects the booking
// when the product already carries an active order.
func (uc *OrderUseCase) Place(ctx context.Context, buyerEmail string, input PlaceOrderInput) (*entity.Order, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.SellerEmail == buyerEmail {
		return nil, errors.BadRequest("You cannot order your own product", nil)
	}

	order := &entity.Order{
		ProductID:    product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		UserEmail:    buyerEmail,
		SellerEmail:  product.SellerEmail,
		MeetingPoint: input.MeetingPoint,
		Phone:        input.Phone,
	}

	if err := uc.orderRepo.Book(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s placed on product %s by %s", order.ID, order.ProductID, buyerEmail)
	return order, nil
}

func (uc *OrderUseCase) ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByBuyer(ctx, email)
}

// ListBySeller returns the orders placed on a seller's products — the
// seller's buyers.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, email string) ([]*entity.Order, error) {
	return uc.orderRepo.ListBySeller(ctx, email)
}

// OrderDetail is an order together with its payment once one is recorded.
type OrderDetail struct {
	*entity.Order
	Payment *entity.Payment `json:"payment,omitempty"`
}

func (uc *OrderUseCase) Get(ctx context.Context, id, callerEmail string) (*OrderDetail, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserEmail != callerEmail && order.SellerEmail != callerEmail {
		return nil, errors.Forbidden("This order belongs to another user", nil)
	}

	detail := &OrderDetail{Order: order}
	if order.Paid {
		payment, err := uc.paymentRepo.GetByOrderID(ctx, id)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		detail.Payment = payment
	}
	return detail, nil
}

// Cancel deletes an unpaid order and restores availability.
func (uc *OrderUseCase) Cancel(ctx context.Context, id, callerEmail string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.UserEmail != callerEmail {
		return errors.Forbidden("This order belongs to another user", nil)
	}
	if order.Paid {
		return errors.BadRequest("Paid orders cannot be cancelled", nil)
	}
	return uc.orderRepo.Cancel(ctx, id)
}
