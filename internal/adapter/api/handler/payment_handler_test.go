package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebooks/internal/domain/entity"
	"rebooks/internal/usecase"
)

func newPaymentHandler(orders ...*entity.Order) (*PaymentHandler, *memOrderRepo) {
	orderRepo := newMemOrderRepo(orders...)
	uc := usecase.NewPaymentUseCase(&memPaymentRepo{orders: orderRepo}, orderRepo, &stubGateway{})
	return NewPaymentHandler(uc), orderRepo
}

func TestCreateIntent(t *testing.T) {
	h, _ := newPaymentHandler(&entity.Order{
		ID:        "o1",
		ProductID: "p1",
		Price:     10.5,
		UserEmail: "buyer@example.com",
	})

	c, rec := newTestContext(http.MethodPost, "/create-payment-intent",
		`{"order_id":"o1"}`, "buyer@example.com")
	require.NoError(t, h.CreateIntent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_test_secret"}`, rec.Body.String())
}

func TestCreateIntentFromPrice(t *testing.T) {
	h, _ := newPaymentHandler()

	c, rec := newTestContext(http.MethodPost, "/create-payment-intent",
		`{"price":19.99}`, "buyer@example.com")
	require.NoError(t, h.CreateIntent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["clientSecret"])
}

func TestCreateIntentOtherUsersOrder(t *testing.T) {
	h, _ := newPaymentHandler(&entity.Order{
		ID:        "o1",
		Price:     10,
		UserEmail: "buyer@example.com",
	})

	c, rec := newTestContext(http.MethodPost, "/create-payment-intent",
		`{"order_id":"o1"}`, "mallory@example.com")
	require.NoError(t, h.CreateIntent(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRecordPayment(t *testing.T) {
	h, orderRepo := newPaymentHandler(&entity.Order{
		ID:        "o1",
		ProductID: "p1",
		Price:     25,
		UserEmail: "buyer@example.com",
	})

	c, rec := newTestContext(http.MethodPost, "/payment",
		`{"order_id":"o1","transaction_id":"txn_123","amount":25}`, "buyer@example.com")
	require.NoError(t, h.Record(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var payment entity.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, "txn_123", payment.TransactionID)
	assert.True(t, orderRepo.orders["o1"].Paid)
}

func TestRecordPaymentTwice(t *testing.T) {
	h, _ := newPaymentHandler(&entity.Order{
		ID:        "o1",
		ProductID: "p1",
		UserEmail: "buyer@example.com",
	})

	c, _ := newTestContext(http.MethodPost, "/payment",
		`{"order_id":"o1","transaction_id":"txn_1","amount":25}`, "buyer@example.com")
	require.NoError(t, h.Record(c))

	c, rec := newTestContext(http.MethodPost, "/payment",
		`{"order_id":"o1","transaction_id":"txn_2","amount":25}`, "buyer@example.com")
	require.NoError(t, h.Record(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordPaymentValidation(t *testing.T) {
	h, _ := newPaymentHandler()

	c, rec := newTestContext(http.MethodPost, "/payment", `{"order_id":"o1"}`, "buyer@example.com")
	require.NoError(t, h.Record(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
