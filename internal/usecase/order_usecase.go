package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"shoppingpaglu/internal/domain/model"
	repo "shoppingpaglu/internal/repository"

	"github.com/shopspring/decimal"
)

// 税率（固定8%）
var taxRate = decimal.RequireFromString("0.08")

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// チェックアウト結果の記録先（metrics）
type CheckoutObserver interface {
	ObserveCheckout(result string, totalAmount float64)
}

type noopObserver struct{}

func (noopObserver) ObserveCheckout(string, float64) {}

const (
	CheckoutCreated   = "created"
	CheckoutEmptyCart = "empty_cart"
	CheckoutFailed    = "failed"
)

type OrderUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
	clock    Clock
	observer CheckoutObserver
	//trueならヘッダと明細を1トランザクションで書く
	atomic bool
}

type OrderOption func(*OrderUsecase)

func WithClock(c Clock) OrderOption {
	return func(u *OrderUsecase) { u.clock = c }
}

func WithCheckoutObserver(o CheckoutObserver) OrderOption {
	return func(u *OrderUsecase) { u.observer = o }
}

func NewOrderUsecase(products repo.ProductRepository, tx repo.TransactionManager, atomic bool, opts ...OrderOption) *OrderUsecase {
	u := &OrderUsecase{
		products: products,
		tx:       tx,
		clock:    SystemClock{},
		observer: noopObserver{},
		atomic:   atomic,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type PlaceOrderInput struct {
	UserEmail string
	Cart      map[string]int64 // productId -> 数量
}

type PlaceOrderOutput struct {
	OrderID     int64
	Subtotal    float64
	Tax         float64
	TotalAmount float64
	Items       []model.OrderItem
}

// PlaceOrder はカートから注文を作る。
// カートにあってもDBに無い商品は合計にも明細にも入らない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if len(in.Cart) == 0 {
		u.observer.ObserveCheckout(CheckoutEmptyCart, 0)
		return PlaceOrderOutput{}, NewHTTPError(ErrEmptyCart, http.StatusBadRequest, "Cart is empty")
	}

	out, err := u.placeOrder(ctx, in)
	if err != nil {
		u.observer.ObserveCheckout(CheckoutFailed, 0)
		return PlaceOrderOutput{}, err
	}
	u.observer.ObserveCheckout(CheckoutCreated, out.TotalAmount)
	return out, nil
}

func (u *OrderUsecase) placeOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	ids := make([]string, 0, len(in.Cart))
	for id := range in.Cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	//価格はここで1回だけ読む（明細の価格スナップショット）
	products, err := u.products.FindByIDs(ctx, ids)
	if err != nil {
		return PlaceOrderOutput{}, NewStorageError("Error fetching product details for order.", err)
	}

	subtotal := decimal.Zero
	items := make([]model.OrderItem, 0, len(products))
	for _, p := range products {
		qty := in.Cart[p.ID]
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(qty))
		subtotal = subtotal.Add(line)

		items = append(items, model.OrderItem{
			ProductID: p.ID,
			Quantity:  qty,
			Price:     p.Price,
		})
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	out := PlaceOrderOutput{
		Subtotal:    subtotal.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		TotalAmount: total.InexactFloat64(),
	}

	write := func(r repo.TxRepos) error {
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserEmail:   in.UserEmail,
			OrderDate:   model.FormatOrderDate(u.clock.Now()),
			TotalAmount: out.TotalAmount,
		})
		if err != nil {
			return NewStorageError("Failed to create order.", err)
		}

		//注文明細
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewStorageError("Failed to save order items.", err)
		}

		out.OrderID = orderID
		out.Items = items
		return nil
	}

	if u.atomic {
		err = u.tx.WithinTx(ctx, write)
	} else {
		err = u.tx.WithoutTx(ctx, write)
	}
	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

// 自分の注文一覧（新しい順、明細つき）
func (u *OrderUsecase) ListOrders(ctx context.Context, userEmail string) ([]model.Order, error) {
	var outs []model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserEmail(ctx, userEmail)
		if err != nil {
			return NewStorageError("Error fetching orders", err)
		}

		outs = make([]model.Order, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewStorageError("Error fetching orders", err)
			}
			o.Items = items
			outs = append(outs, o)
		}
		return nil
	})

	if err != nil {
		return []model.Order{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, userEmail string, orderID int64) (model.Order, error) {
	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(ErrNotFound, http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewStorageError("Error fetching order", err)
		}
		if o.UserEmail != userEmail {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(ErrNotFound, http.StatusNotFound, "Order not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewStorageError("Error fetching order", err)
		}
		o.Items = items
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}
