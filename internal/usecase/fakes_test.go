package usecase

import (
	"context"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/service"
	"rebooks/pkg/errors"
)

// In-memory fakes for the repository interfaces. Maps are keyed the same
// way the Firestore implementations key their documents.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.Email]; ok {
		return errors.Conflict("User already exists")
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Verify(ctx context.Context, email string) error {
	user, ok := r.users[email]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Verified = true
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, email string) error {
	if _, ok := r.users[email]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, email)
	return nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = "generated-id"
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	for _, p := range r.products {
		if matchesProduct(p, filter) {
			products = append(products, p)
		}
	}
	return products, int64(len(products)), nil
}

func matchesProduct(p *entity.Product, filter map[string]interface{}) bool {
	for key, value := range filter {
		switch key {
		case "available":
			if p.Available != value.(bool) {
				return false
			}
		case "advertisement":
			if p.Advertisement != value.(bool) {
				return false
			}
		case "paid":
			if p.Paid != value.(bool) {
				return false
			}
		case "reported":
			if p.Reported != value.(bool) {
				return false
			}
		case "sellerEmail":
			if p.SellerEmail != value.(string) {
				return false
			}
		case "categoryId":
			if p.CategoryID != value.(string) {
				return false
			}
		}
	}
	return true
}

func (r *fakeProductRepo) SetAdvertisement(ctx context.Context, id string, advertised bool) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Advertisement = advertised
	return nil
}

func (r *fakeProductRepo) SetReported(ctx context.Context, id string, reported bool) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Reported = reported
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	listCalls  int
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	r.listCalls++
	var categories []*entity.Category
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

type fakeOrderRepo struct {
	orders   map[string]*entity.Order
	products *fakeProductRepo
}

func newFakeOrderRepo(products *fakeProductRepo, orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*entity.Order), products: products}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Book(ctx context.Context, order *entity.Order) error {
	product, ok := r.products.products[order.ProductID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	if !product.Available || product.Paid {
		return errors.Conflict("Product already booked")
	}
	if order.ID == "" {
		order.ID = "order-" + order.ProductID
	}
	product.Available = false
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.UserEmail == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) ListBySeller(ctx context.Context, email string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.SellerEmail == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) Cancel(ctx context.Context, id string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	if product, ok := r.products.products[order.ProductID]; ok {
		product.Available = true
	}
	delete(r.orders, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
	orders   *fakeOrderRepo
}

func newFakePaymentRepo(orders *fakeOrderRepo) *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.Payment), orders: orders}
}

func (r *fakePaymentRepo) Record(ctx context.Context, payment *entity.Payment) error {
	order, ok := r.orders.orders[payment.OrderID]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	if order.Paid {
		return errors.Conflict("Order already paid")
	}
	order.Paid = true
	order.TransactionID = payment.TransactionID
	if product, ok := r.orders.products.products[order.ProductID]; ok {
		product.Paid = true
		product.Advertisement = false
	}
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, errors.NotFound("Payment", nil)
}

type fakeWishlistRepo struct {
	items map[string]*entity.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]*entity.WishlistItem)}
}

func (r *fakeWishlistRepo) Add(ctx context.Context, userEmail, productID string) (*entity.WishlistItem, error) {
	id := userEmail + "_" + productID
	if _, ok := r.items[id]; ok {
		return nil, errors.Conflict("Product already in wishlist")
	}
	item := &entity.WishlistItem{ID: id, UserEmail: userEmail, ProductID: productID, Available: true}
	r.items[id] = item
	return item, nil
}

func (r *fakeWishlistRepo) Remove(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Wishlist item", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeWishlistRepo) ListByUser(ctx context.Context, userEmail string) ([]entity.WishlistItemWithProduct, error) {
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

type fakeGateway struct {
	lastRequest service.PaymentIntentRequest
	intent      *service.PaymentIntent
	err         error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, req service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	g.lastRequest = req
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
