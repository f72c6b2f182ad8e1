package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type BookUsecase struct {
	bookRepo      repo.BookRepository
	categoryRepo  repo.CategoryRepository
	imageRepo     repo.BookImageRepository
	orderItemRepo repo.OrderItemRepository
}

// DI
func NewBookUsecase(
	bookRepo repo.BookRepository,
	categoryRepo repo.CategoryRepository,
	imageRepo repo.BookImageRepository,
	orderItemRepo repo.OrderItemRepository,
) *BookUsecase {
	return &BookUsecase{
		bookRepo:      bookRepo,
		categoryRepo:  categoryRepo,
		imageRepo:     imageRepo,
		orderItemRepo: orderItemRepo,
	}
}

// GET /booksの入力DTO
type ListBooksInput struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	MinPrice   *int64
	MaxPrice   *int64
	Sort       string
}

type BookListOutput struct {
	Items []model.Book `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// 詳細はカテゴリ名と画像も付けて返す（読み方はここで明示的に決める）
type BookDetailOutput struct {
	model.Book
	Category string            `json:"category"`
	Images   []model.BookImage `json:"images"`
}

func (u *BookUsecase) ListBooks(ctx context.Context, in ListBooksInput) (BookListOutput, error) {
	if in.Page < 1 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc", "modified":
	default:
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.bookRepo.List(ctx, repo.BookListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		CategoryID: in.CategoryID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		Sort:       in.Sort,
	})
	if err != nil {
		return BookListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return BookListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *BookUsecase) GetBookDetail(ctx context.Context, bookID int64) (BookDetailOutput, error) {
	if bookID <= 0 {
		return BookDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	b, err := u.bookRepo.FindByID(ctx, bookID)
	if err == repo.ErrNotFound {
		return BookDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return BookDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := BookDetailOutput{Book: b, Images: []model.BookImage{}}

	if c, err := u.categoryRepo.FindByID(ctx, b.CategoryID); err == nil {
		out.Category = c.Title
	}

	imgs, err := u.imageRepo.ListByBookID(ctx, bookID)
	if err != nil {
		return BookDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.Images = imgs

	return out, nil
}

type AdminSaveBookInput struct {
	Title       string
	Slug        string
	Description string
	Price       int64
	Inventory   int64
	CategoryID  int64
}

func (u *BookUsecase) AdminCreateBook(ctx context.Context, adminUserID int64, in AdminSaveBookInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validateSaveInput(in); err != nil {
		return 0, err
	}

	//カテゴリ存在チェック
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b, err := u.bookRepo.Create(ctx, model.Book{
		Title:       strings.TrimSpace(in.Title),
		Slug:        strings.TrimSpace(in.Slug),
		Description: in.Description,
		Price:       in.Price,
		Inventory:   in.Inventory,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b.ID, nil
}

func (u *BookUsecase) AdminUpdateBook(ctx context.Context, adminUserID int64, bookID int64, in AdminSaveBookInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bookID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if err := u.validateSaveInput(in); err != nil {
		return err
	}

	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err := u.bookRepo.Update(ctx, model.Book{
		ID:          bookID,
		Title:       strings.TrimSpace(in.Title),
		Slug:        strings.TrimSpace(in.Slug),
		Description: in.Description,
		Price:       in.Price,
		Inventory:   in.Inventory,
		CategoryID:  in.CategoryID,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDeleteBook は書籍削除。
// 注文明細から参照されている本は405で拒否する（注文履歴を壊さない）。
func (u *BookUsecase) AdminDeleteBook(ctx context.Context, adminUserID int64, bookID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bookID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	referenced, err := u.orderItemRepo.ExistsByBookID(ctx, bookID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if referenced {
		return NewHTTPError(http.StatusMethodNotAllowed, "book cannot be deleted because it is associated with an order item")
	}

	if err := u.bookRepo.Delete(ctx, bookID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *BookUsecase) validateSaveInput(in AdminSaveBookInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	if strings.TrimSpace(in.Slug) == "" {
		return NewHTTPError(http.StatusBadRequest, "slug required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Inventory < 0 {
		return NewHTTPError(http.StatusBadRequest, "inventory must be >= 0")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	return nil
}

// ---- 画像（/books/:id/images）----

func (u *BookUsecase) ListImages(ctx context.Context, bookID int64) ([]model.BookImage, error) {
	if bookID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if _, err := u.bookRepo.FindByID(ctx, bookID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	imgs, err := u.imageRepo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return imgs, nil
}

func (u *BookUsecase) AdminAddImage(ctx context.Context, adminUserID int64, bookID int64, url string) (model.BookImage, error) {
	if adminUserID <= 0 {
		return model.BookImage{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bookID <= 0 {
		return model.BookImage{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if strings.TrimSpace(url) == "" {
		return model.BookImage{}, NewHTTPError(http.StatusBadRequest, "url required")
	}

	if _, err := u.bookRepo.FindByID(ctx, bookID); err != nil {
		if err == repo.ErrNotFound {
			return model.BookImage{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.BookImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	img, err := u.imageRepo.Create(ctx, model.BookImage{BookID: bookID, URL: strings.TrimSpace(url)})
	if err != nil {
		return model.BookImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return img, nil
}

func (u *BookUsecase) AdminDeleteImage(ctx context.Context, adminUserID int64, imageID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if imageID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.imageRepo.DeleteByID(ctx, imageID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
