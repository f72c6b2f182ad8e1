package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderUsecase_PlaceOrder_UnknownCart(t *testing.T) {
	ctx := context.Background()

	tx, r := newStubTx()
	customerRepo := new(MockCustomerRepo)
	customerRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{ID: 5, UserID: 1}, nil)

	r.carts.On("FindByID", mock.Anything, "missing").Return(model.Cart{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{CartID: "missing"})
	assertErrContains(t, err, "no cart with the given id")
}

func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()

	tx, r := newStubTx()
	customerRepo := new(MockCustomerRepo)
	customerRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{ID: 5, UserID: 1}, nil)

	r.carts.On("FindByID", mock.Anything, "c1").Return(model.Cart{ID: "c1"}, nil)
	r.cartItems.On("ListByCartID", mock.Anything, "c1").Return([]model.CartItem{}, nil)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{CartID: "c1"})
	assertErrContains(t, err, "cart is empty")

	//空カートでは注文もカート削除も起きない
	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// 成功パス：PENDINGで作成、unit_priceは「この瞬間の書籍価格」、カートは消える
func TestOrderUsecase_PlaceOrder_SnapshotsPriceAndDeletesCart(t *testing.T) {
	ctx := context.Background()

	tx, r := newStubTx()
	customerRepo := new(MockCustomerRepo)
	customerRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{ID: 5, UserID: 1}, nil)

	r.carts.On("FindByID", mock.Anything, "c1").Return(model.Cart{ID: "c1"}, nil)
	r.cartItems.On("ListByCartID", mock.Anything, "c1").Return([]model.CartItem{
		{ID: 1, CartID: "c1", BookID: 10, Quantity: 2},
		{ID: 2, CartID: "c1", BookID: 20, Quantity: 1},
	}, nil)
	r.books.On("FindByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, Title: "Go", Price: 1500}, nil)
	r.books.On("FindByID", mock.Anything, int64(20)).Return(model.Book{ID: 20, Title: "SQL", Price: 2000}, nil)

	r.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerID == 5 && o.Status == model.OrderStatusPending
	})).Return(int64(100), nil)

	r.orderItems.On("CreateBulk", mock.Anything, int64(100), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		//unit_priceがスナップショットされている
		return items[0].BookID == 10 && items[0].UnitPrice == 1500 && items[0].Quantity == 2 &&
			items[1].BookID == 20 && items[1].UnitPrice == 2000 && items[1].Quantity == 1
	})).Return(nil)

	r.carts.On("Delete", mock.Anything, "c1").Return(nil)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	out, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{CartID: "c1"})
	assert.NoError(t, err)
	assert.Equal(t, int64(100), out.ID)
	assert.Equal(t, string(model.OrderStatusPending), out.Status)
	assert.Equal(t, int64(1500*2+2000), out.TotalPrice)
	assert.Len(t, out.Items, 2)

	r.orders.AssertExpectations(t)
	r.orderItems.AssertExpectations(t)
	r.carts.AssertExpectations(t)
}

// 明細作成で失敗したらトランザクション全体が失敗し、カート削除は呼ばれない
func TestOrderUsecase_PlaceOrder_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()

	tx, r := newStubTx()
	customerRepo := new(MockCustomerRepo)
	customerRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{ID: 5, UserID: 1}, nil)

	r.carts.On("FindByID", mock.Anything, "c1").Return(model.Cart{ID: "c1"}, nil)
	r.cartItems.On("ListByCartID", mock.Anything, "c1").Return([]model.CartItem{
		{ID: 1, CartID: "c1", BookID: 10, Quantity: 2},
	}, nil)
	r.books.On("FindByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, Price: 1500}, nil)
	r.orders.On("Create", mock.Anything, mock.Anything).Return(int64(100), nil)
	r.orderItems.On("CreateBulk", mock.Anything, int64(100), mock.Anything).Return(assert.AnError)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{CartID: "c1"})
	assertErrContains(t, err, "db error")

	r.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_NoCustomerProfile(t *testing.T) {
	ctx := context.Background()

	tx, _ := newStubTx()
	customerRepo := new(MockCustomerRepo)
	customerRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{CartID: "c1"})
	assertErrContains(t, err, "no customer profile")
}

// 他人の注文は存在しない扱い（404）
func TestOrderUsecase_GetOrderDetail_OtherCustomer_NotFound(t *testing.T) {
	ctx := context.Background()

	tx, r := newStubTx()
	customerRepo := new(MockCustomerRepo)

	r.orders.On("FindByID", mock.Anything, int64(100)).Return(model.Order{ID: 100, CustomerID: 99}, nil)
	r.customers.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{ID: 5, UserID: 1}, nil)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	_, err := uc.GetOrderDetail(ctx, 1, false, 100)
	assertErrContains(t, err, "not found")
}

// 管理者は他人の注文も見える
func TestOrderUsecase_GetOrderDetail_AdminSeesAll(t *testing.T) {
	ctx := context.Background()

	tx, r := newStubTx()
	customerRepo := new(MockCustomerRepo)

	r.orders.On("FindByID", mock.Anything, int64(100)).Return(model.Order{ID: 100, CustomerID: 99, Status: model.OrderStatusPending}, nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{
		{ID: 1, OrderID: 100, BookID: 10, Quantity: 2, UnitPrice: 1500},
	}, nil)
	r.books.On("FindByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, Title: "Go"}, nil)

	uc := usecase.NewOrderUsecase(tx, customerRepo)

	out, err := uc.GetOrderDetail(ctx, 1, true, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), out.ID)
	assert.Equal(t, int64(3000), out.TotalPrice)
}
