package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"shoppingpaglu/internal/domain/model"
	repo "shoppingpaglu/internal/repository"
	"shoppingpaglu/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var orderTime = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func newOrderMocks() (*ProductRepoMock, *TxManagerStub) {
	pr := new(ProductRepoMock)
	tm := &TxManagerStub{repos: txReposMock{orders: new(OrderRepoMock), items: new(OrderItemRepoMock)}}
	return pr, tm
}

func TestOrderUsecase_PlaceOrder_ComputesTotals(t *testing.T) {
	ctx := context.Background()
	pr, tm := newOrderMocks()
	spy := &observerSpy{}
	uc := usecase.NewOrderUsecase(pr, tm, true, usecase.WithClock(fixedClock{orderTime}), usecase.WithCheckoutObserver(spy))

	pr.On("FindByIDs", mock.Anything, []string{"p1", "p2"}).Return([]model.Product{
		{ID: "p1", Price: 499},
		{ID: "p2", Price: 1999},
	}, nil).Once()

	tm.repos.orders.On("Create", mock.Anything, model.Order{
		UserEmail:   "a@example.com",
		OrderDate:   "2024-05-01T12:30:00.000Z",
		TotalAmount: 3236.76,
	}).Return(int64(7), nil).Once()

	tm.repos.items.On("CreateBulk", mock.Anything, int64(7), []model.OrderItem{
		{ProductID: "p1", Quantity: 2, Price: 499},
		{ProductID: "p2", Quantity: 1, Price: 1999},
	}).Return(nil).Once()

	out, err := uc.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserEmail: "a@example.com",
		Cart:      map[string]int64{"p2": 1, "p1": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.OrderID)
	assert.Equal(t, 2997.0, out.Subtotal)
	assert.Equal(t, 239.76, out.Tax)
	assert.Equal(t, 3236.76, out.TotalAmount)
	assert.Equal(t, 1, tm.withTx)
	assert.Equal(t, 0, tm.without)
	assert.Equal(t, []string{usecase.CheckoutCreated}, spy.results)

	pr.AssertExpectations(t)
	tm.repos.orders.AssertExpectations(t)
	tm.repos.items.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	pr, tm := newOrderMocks()
	spy := &observerSpy{}
	uc := usecase.NewOrderUsecase(pr, tm, true, usecase.WithCheckoutObserver(spy))

	for _, cart := range []map[string]int64{nil, {}} {
		_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{UserEmail: "a@example.com", Cart: cart})
		assert.ErrorIs(t, err, usecase.ErrEmptyCart)

		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
		assert.Equal(t, "Cart is empty", he.Message)
	}

	//DBには触らない
	pr.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	assert.Zero(t, tm.withTx+tm.without)
	assert.Equal(t, []string{usecase.CheckoutEmptyCart, usecase.CheckoutEmptyCart}, spy.results)
}

func TestOrderUsecase_PlaceOrder_UnknownProductsAreDropped(t *testing.T) {
	ctx := context.Background()
	pr, tm := newOrderMocks()
	uc := usecase.NewOrderUsecase(pr, tm, true, usecase.WithClock(fixedClock{orderTime}))

	pr.On("FindByIDs", mock.Anything, []string{"p999"}).Return([]model.Product{}, nil).Once()
	tm.repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.TotalAmount == 0
	})).Return(int64(1), nil).Once()
	tm.repos.items.On("CreateBulk", mock.Anything, int64(1), []model.OrderItem{}).Return(nil).Once()

	out, err := uc.PlaceOrder(ctx, usecase.PlaceOrderInput{UserEmail: "a@example.com", Cart: map[string]int64{"p999": 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.OrderID)
	assert.Zero(t, out.TotalAmount)
	assert.Empty(t, out.Items)
}

func TestOrderUsecase_PlaceOrder_StorageFailures(t *testing.T) {
	ctx := context.Background()
	in := usecase.PlaceOrderInput{UserEmail: "a@example.com", Cart: map[string]int64{"p1": 1}}
	p1 := []model.Product{{ID: "p1", Price: 499}}

	t.Run("product lookup", func(t *testing.T) {
		pr, tm := newOrderMocks()
		spy := &observerSpy{}
		uc := usecase.NewOrderUsecase(pr, tm, true, usecase.WithCheckoutObserver(spy))

		pr.On("FindByIDs", mock.Anything, []string{"p1"}).Return(nil, errors.New("boom")).Once()

		_, err := uc.PlaceOrder(ctx, in)
		assert.ErrorIs(t, err, usecase.ErrStorage)
		he, _ := usecase.AsHTTPError(err)
		assert.Equal(t, "Error fetching product details for order.", he.Message)
		assert.Zero(t, tm.withTx)
		assert.Equal(t, []string{usecase.CheckoutFailed}, spy.results)
	})

	t.Run("order header", func(t *testing.T) {
		pr, tm := newOrderMocks()
		uc := usecase.NewOrderUsecase(pr, tm, true)

		pr.On("FindByIDs", mock.Anything, []string{"p1"}).Return(p1, nil).Once()
		tm.repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("boom")).Once()

		_, err := uc.PlaceOrder(ctx, in)
		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, he.Status)
		assert.Equal(t, "Failed to create order.", he.Message)
		tm.repos.items.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("order items (non-atomic)", func(t *testing.T) {
		pr, tm := newOrderMocks()
		uc := usecase.NewOrderUsecase(pr, tm, false)

		pr.On("FindByIDs", mock.Anything, []string{"p1"}).Return(p1, nil).Once()
		tm.repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(3), nil).Once()
		tm.repos.items.On("CreateBulk", mock.Anything, int64(3), mock.Anything).Return(errors.New("boom")).Once()

		_, err := uc.PlaceOrder(ctx, in)
		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, "Failed to save order items.", he.Message)
		assert.Equal(t, 0, tm.withTx)
		assert.Equal(t, 1, tm.without)
	})
}

func TestOrderUsecase_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("own order with items", func(t *testing.T) {
		pr, tm := newOrderMocks()
		uc := usecase.NewOrderUsecase(pr, tm, true)

		tm.repos.orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, UserEmail: "a@example.com"}, nil).Once()
		tm.repos.items.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.OrderItem{{ID: 1, OrderID: 5, ProductID: "p1"}}, nil).Once()

		got, err := uc.GetOrder(ctx, "a@example.com", 5)
		require.NoError(t, err)
		assert.Len(t, got.Items, 1)
	})

	t.Run("other user's order -> 404", func(t *testing.T) {
		pr, tm := newOrderMocks()
		uc := usecase.NewOrderUsecase(pr, tm, true)

		tm.repos.orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, UserEmail: "b@example.com"}, nil).Once()

		_, err := uc.GetOrder(ctx, "a@example.com", 5)
		assert.ErrorIs(t, err, usecase.ErrNotFound)
		tm.repos.items.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
	})

	t.Run("missing -> 404", func(t *testing.T) {
		pr, tm := newOrderMocks()
		uc := usecase.NewOrderUsecase(pr, tm, true)

		tm.repos.orders.On("FindByID", mock.Anything, int64(5)).Return(nil, repo.ErrNotFound).Once()

		_, err := uc.GetOrder(ctx, "a@example.com", 5)
		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Status)
		assert.Equal(t, "Order not found", he.Message)
	})
}

func TestOrderUsecase_ListOrders(t *testing.T) {
	ctx := context.Background()
	pr, tm := newOrderMocks()
	uc := usecase.NewOrderUsecase(pr, tm, true)

	tm.repos.orders.On("ListByUserEmail", mock.Anything, "a@example.com").Return([]model.Order{{ID: 2}, {ID: 1}}, nil).Once()
	tm.repos.items.On("ListByOrderID", mock.Anything, int64(2)).Return([]model.OrderItem{{ID: 3}}, nil).Once()
	tm.repos.items.On("ListByOrderID", mock.Anything, int64(1)).Return([]model.OrderItem{{ID: 1}, {ID: 2}}, nil).Once()

	got, err := uc.ListOrders(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Items, 1)
	assert.Len(t, got[1].Items, 2)
}
