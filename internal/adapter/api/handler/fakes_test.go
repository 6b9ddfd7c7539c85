package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"rebooks/internal/adapter/api"
	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/service"
	"rebooks/pkg/errors"
)

// In-memory repository fakes backing the handler tests.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.Email]; ok {
		return errors.Conflict("User already exists")
	}
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memUserRepo) Verify(ctx context.Context, email string) error {
	user, ok := r.users[email]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Verified = true
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, email string) error {
	delete(r.users, email)
	return nil
}

func (r *memUserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = "generated-id"
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *memProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, int64(len(products)), nil
}

func (r *memProductRepo) SetAdvertisement(ctx context.Context, id string, advertised bool) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Advertisement = advertised
	return nil
}

func (r *memProductRepo) SetReported(ctx context.Context, id string, reported bool) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Reported = reported
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *memCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo(orders ...*entity.Order) *memOrderRepo {
	r := &memOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *memOrderRepo) Book(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = "order-" + order.ProductID
	}
	r.orders[order.ID] = order
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *memOrderRepo) ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.UserEmail == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) ListBySeller(ctx context.Context, email string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.SellerEmail == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) Cancel(ctx context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

type memPaymentRepo struct {
	orders *memOrderRepo
}

func (r *memPaymentRepo) Record(ctx context.Context, payment *entity.Payment) error {
	order, ok := r.orders.orders[payment.OrderID]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	if order.Paid {
		return errors.Conflict("Order already paid")
	}
	order.Paid = true
	order.TransactionID = payment.TransactionID
	return nil
}

func (r *memPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	return nil, errors.NotFound("Payment", nil)
}

type memWishlistRepo struct {
	items map[string]*entity.WishlistItem
}

func newMemWishlistRepo() *memWishlistRepo {
	return &memWishlistRepo{items: make(map[string]*entity.WishlistItem)}
}

func (r *memWishlistRepo) Add(ctx context.Context, userEmail, productID string) (*entity.WishlistItem, error) {
	id := userEmail + "_" + productID
	if _, ok := r.items[id]; ok {
		return nil, errors.Conflict("Product already in wishlist")
	}
	item := &entity.WishlistItem{ID: id, UserEmail: userEmail, ProductID: productID, Available: true}
	r.items[id] = item
	return item, nil
}

func (r *memWishlistRepo) Remove(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memWishlistRepo) ListByUser(ctx context.Context, userEmail string) ([]entity.WishlistItemWithProduct, error) {
	var items []entity.WishlistItemWithProduct
	for _, item := range r.items {
		if item.UserEmail == userEmail {
			items = append(items, entity.WishlistItemWithProduct{
				ID:        item.ID,
				UserEmail: item.UserEmail,
				ProductID: item.ProductID,
				Available: item.Available,
			})
		}
	}
	return items, nil
}

type stubGateway struct {
	intent *service.PaymentIntent
	err    error
}

func (g *stubGateway) CreateIntent(ctx context.Context, req service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	if g.intent != nil {
		return g.intent, nil
	}
	return &service.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       "requires_payment_method",
	}, nil
}

// newTestContext builds an echo context with the project's validator, a
// JSON body, and optionally the authenticated caller's email set the way
// the auth middleware does.
func newTestContext(method, target, body, callerEmail string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if callerEmail != "" {
		c.Set("email", callerEmail)
	}
	return c, rec
}
