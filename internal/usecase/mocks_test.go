package usecase_test

import (
	"context"
	"sync"

	"shoppingpaglu/internal/domain/model"
	repo "shoppingpaglu/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) InsertIfAbsent(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserEmail(ctx context.Context, email string) ([]model.Order, error) {
	args := m.Called(ctx, email)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type txReposMock struct {
	orders *OrderRepoMock
	items  *OrderItemRepoMock
}

func (r txReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r txReposMock) OrderItems() repo.OrderItemRepository { return r.items }

// どちらの経路で呼ばれたかを記録するだけのTxManager
type TxManagerStub struct {
	repos txReposMock

	mu      sync.Mutex
	withTx  int
	without int
}

func (s *TxManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	s.mu.Lock()
	s.withTx++
	s.mu.Unlock()
	return fn(s.repos)
}

func (s *TxManagerStub) WithoutTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	s.mu.Lock()
	s.without++
	s.mu.Unlock()
	return fn(s.repos)
}

var _ repo.TransactionManager = (*TxManagerStub)(nil)

// チェックアウト結果の記録
type observerSpy struct {
	results []string
	amounts []float64
}

func (o *observerSpy) ObserveCheckout(result string, totalAmount float64) {
	o.results = append(o.results, result)
	o.amounts = append(o.amounts, totalAmount)
}
