package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /carts の業務ロジックです。
// カートは匿名（UUIDトークン）で、ログイン無しで操作できる。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	bookRepo     repo.BookRepository
	idGen        IDGenerator
}

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	bookRepo repo.BookRepository,
	idGen IDGenerator,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		bookRepo:     bookRepo,
		idGen:        idGen,
	}
}

// 明細1件のレスポンス
// total_price は「書籍の今の価格 × 数量」。カートは購入前なので
// スナップショットは取らず、常に現在価格で計算する。
type CartItemResponse struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"book_id"`
	Title      string `json:"title"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

type CartResponse struct {
	CartID     string             `json:"cart_id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice int64              `json:"total_price"`
}

type AddCartItemInput struct {
	BookID   int64
	Quantity int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// CreateCart は空のカートを発行する。
func (u *CartUsecase) CreateCart(ctx context.Context) (CartResponse, error) {
	cart, err := u.cartRepo.Create(ctx, model.Cart{ID: u.idGen.NewID()})
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{CartID: cart.ID, Items: []CartItemResponse{}, TotalPrice: 0}, nil
}

// GetCart はカート取得（明細＋現在価格の合計）。
func (u *CartUsecase) GetCart(ctx context.Context, cartID string) (CartResponse, error) {
	if cartID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// DeleteCart はカートを明細ごと削除する。
func (u *CartUsecase) DeleteCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	if err := u.cartRepo.Delete(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AddItem はカートに追加（同一書籍は数量加算）。
// 加算でも新規でも、結果の明細を必ず返す。
func (u *CartUsecase) AddItem(ctx context.Context, cartID string, in AddCartItemInput) (CartItemResponse, error) {
	if cartID == "" {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if in.BookID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid book_id")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//カートの存在チェック
	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//書籍チェック
	b, err := u.bookRepo.FindByID(ctx, in.BookID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// Upsert（同一書籍は加算、行ロックで同時加算に耐える）
	item, err := u.cartItemRepo.UpsertByCartAndBook(ctx, cartID, in.BookID, in.Quantity)
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartItemResponse(item, b), nil
}

// 数量変更（加算ではなく上書き）。
func (u *CartUsecase) UpdateItem(ctx context.Context, cartID string, cartItemID int64, in UpdateCartItemInput) (CartItemResponse, error) {
	if cartID == "" {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if cartItemID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他カートの明細は触らせない
	if item.CartID != cartID {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b, err := u.bookRepo.FindByID(ctx, item.BookID)
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item.Quantity = in.Quantity
	return toCartItemResponse(item, b), nil
}

// 明細削除
func (u *CartUsecase) DeleteItem(ctx context.Context, cartID string, cartItemID int64) error {
	if cartID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.CartID != cartID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// cartIDの明細をまとめてCartResponseを作る。
// 合計は現在の書籍価格で都度計算する。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID string) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		b, err := u.bookRepo.FindByID(ctx, it.BookID)
		if err != nil {
			continue
		}

		r := toCartItemResponse(it, b)
		respItems = append(respItems, r)
		total += r.TotalPrice
	}

	return CartResponse{CartID: cartID, Items: respItems, TotalPrice: total}, nil
}

func toCartItemResponse(item model.CartItem, b model.Book) CartItemResponse {
	return CartItemResponse{
		ID:         item.ID,
		BookID:     b.ID,
		Title:      b.Title,
		Price:      b.Price,
		Quantity:   item.Quantity,
		TotalPrice: b.Price * item.Quantity,
	}
}
