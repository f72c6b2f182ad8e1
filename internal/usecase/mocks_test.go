package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// 共有モックとヘルパー
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), want)
	}
}

type MockBookRepo struct{ mock.Mock }

func (m *MockBookRepo) List(ctx context.Context, q repo.BookListQuery) ([]model.Book, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepo) FindByID(ctx context.Context, id int64) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

func (m *MockBookRepo) Create(ctx context.Context, b model.Book) (model.Book, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(model.Book)
	return created, args.Error(1)
}

func (m *MockBookRepo) Update(ctx context.Context, b model.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepo) CountByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.BookRepository = (*MockBookRepo)(nil)

type MockCategoryRepo struct{ mock.Mock }

func (m *MockCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *MockCategoryRepo) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepo) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.CategoryRepository = (*MockCategoryRepo)(nil)

type MockBookImageRepo struct{ mock.Mock }

func (m *MockBookImageRepo) ListByBookID(ctx context.Context, bookID int64) ([]model.BookImage, error) {
	args := m.Called(ctx, bookID)
	imgs, _ := args.Get(0).([]model.BookImage)
	return imgs, args.Error(1)
}

func (m *MockBookImageRepo) Create(ctx context.Context, img model.BookImage) (model.BookImage, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.BookImage)
	return created, args.Error(1)
}

func (m *MockBookImageRepo) DeleteByID(ctx context.Context, imageID int64) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

var _ repo.BookImageRepository = (*MockBookImageRepo)(nil)

type MockCommentRepo struct{ mock.Mock }

func (m *MockCommentRepo) ListByBookID(ctx context.Context, bookID int64, onlyApproved bool) ([]model.Comment, error) {
	args := m.Called(ctx, bookID, onlyApproved)
	items, _ := args.Get(0).([]model.Comment)
	return items, args.Error(1)
}

func (m *MockCommentRepo) Create(ctx context.Context, c model.Comment) (model.Comment, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Comment)
	return created, args.Error(1)
}

func (m *MockCommentRepo) UpdateStatus(ctx context.Context, commentID int64, status model.CommentStatus) error {
	args := m.Called(ctx, commentID, status)
	return args.Error(0)
}

func (m *MockCommentRepo) DeleteByID(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

var _ repo.CommentRepository = (*MockCommentRepo)(nil)

type MockCustomerRepo struct{ mock.Mock }

func (m *MockCustomerRepo) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *MockCustomerRepo) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepo) FindByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepo) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) List(ctx context.Context, page int, limit int) ([]model.Customer, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Get(1).(int64), args.Error(2)
}

var _ repo.CustomerRepository = (*MockCustomerRepo)(nil)

type MockAddressRepo struct{ mock.Mock }

func (m *MockAddressRepo) FindByCustomerID(ctx context.Context, customerID int64) (model.Address, error) {
	args := m.Called(ctx, customerID)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

func (m *MockAddressRepo) Upsert(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

var _ repo.AddressRepository = (*MockAddressRepo)(nil)

type MockCartRepo struct{ mock.Mock }

func (m *MockCartRepo) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	args := m.Called(ctx, cart)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepo) FindByID(ctx context.Context, cartID string) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepo) Delete(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

var _ repo.CartRepository = (*MockCartRepo)(nil)

type MockCartItemRepo struct{ mock.Mock }

func (m *MockCartItemRepo) ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *MockCartItemRepo) CountByCartID(ctx context.Context, cartID string) (int64, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartItemRepo) UpsertByCartAndBook(ctx context.Context, cartID string, bookID int64, addQty int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, bookID, addQty)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *MockCartItemRepo) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *MockCartItemRepo) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *MockCartItemRepo) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

var _ repo.CartItemRepository = (*MockCartItemRepo)(nil)

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepo) ListByCustomerID(ctx context.Context, customerID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, customerID, page, limit)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepo) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

var _ repo.OrderRepository = (*MockOrderRepo)(nil)

type MockOrderItemRepo struct{ mock.Mock }

func (m *MockOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *MockOrderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *MockOrderItemRepo) ExistsByBookID(ctx context.Context, bookID int64) (bool, error) {
	args := m.Called(ctx, bookID)
	return args.Bool(0), args.Error(1)
}

var _ repo.OrderItemRepository = (*MockOrderItemRepo)(nil)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ repo.UserRepository = (*MockUserRepo)(nil)

type MockDiscountRepo struct{ mock.Mock }

func (m *MockDiscountRepo) List(ctx context.Context) ([]model.Discount, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Discount)
	return items, args.Error(1)
}

func (m *MockDiscountRepo) FindByID(ctx context.Context, id int64) (model.Discount, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(model.Discount)
	return d, args.Error(1)
}

func (m *MockDiscountRepo) Create(ctx context.Context, d model.Discount) (model.Discount, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(model.Discount)
	return created, args.Error(1)
}

func (m *MockDiscountRepo) Update(ctx context.Context, d model.Discount) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDiscountRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDiscountRepo) ReplaceBooks(ctx context.Context, discountID int64, bookIDs []int64) error {
	args := m.Called(ctx, discountID, bookIDs)
	return args.Error(0)
}

func (m *MockDiscountRepo) ListBookIDs(ctx context.Context, discountID int64) ([]int64, error) {
	args := m.Called(ctx, discountID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

var _ repo.DiscountRepository = (*MockDiscountRepo)(nil)

// =====================
// TransactionManagerのスタブ
// =====================

// fnにそのままモックを渡す。fnがエラーを返したらロールバック相当として
// そのエラーを返す（実装はGORMのTransactionと同じ契約）。
type stubTxRepos struct {
	orders     *MockOrderRepo
	orderItems *MockOrderItemRepo
	carts      *MockCartRepo
	cartItems  *MockCartItemRepo
	books      *MockBookRepo
	customers  *MockCustomerRepo
	users      *MockUserRepo
}

func (r *stubTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *stubTxRepos) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *stubTxRepos) Carts() repo.CartRepository           { return r.carts }
func (r *stubTxRepos) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *stubTxRepos) Books() repo.BookRepository           { return r.books }
func (r *stubTxRepos) Customers() repo.CustomerRepository   { return r.customers }
func (r *stubTxRepos) Users() repo.UserRepository           { return r.users }

type stubTxManager struct {
	repos *stubTxRepos
}

func (tm *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

var _ repo.TransactionManager = (*stubTxManager)(nil)

func newStubTx() (*stubTxManager, *stubTxRepos) {
	repos := &stubTxRepos{
		orders:     new(MockOrderRepo),
		orderItems: new(MockOrderItemRepo),
		carts:      new(MockCartRepo),
		cartItems:  new(MockCartItemRepo),
		books:      new(MockBookRepo),
		customers:  new(MockCustomerRepo),
		users:      new(MockUserRepo),
	}
	return &stubTxManager{repos: repos}, repos
}

// カートID発行のスタブ
type stubIDGen struct {
	id string
}

func (g *stubIDGen) NewID() string { return g.id }
