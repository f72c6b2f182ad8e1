package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	bookRepo     repo.BookRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, bookRepo repo.BookRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, bookRepo: bookRepo}
}

type CategoryOutput struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	FeaturedBookID *int64 `json:"featured_book_id,omitempty"`
	BooksCount     int64  `json:"books_count"`
}

func (u *CategoryUsecase) List(ctx context.Context) ([]CategoryOutput, error) {
	cats, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]CategoryOutput, 0, len(cats))
	for _, c := range cats {
		count, err := u.bookRepo.CountByCategoryID(ctx, c.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, CategoryOutput{
			ID:             c.ID,
			Title:          c.Title,
			FeaturedBookID: c.FeaturedBookID,
			BooksCount:     count,
		})
	}
	return outs, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, categoryID int64) (CategoryOutput, error) {
	if categoryID <= 0 {
		return CategoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return CategoryOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CategoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	count, err := u.bookRepo.CountByCategoryID(ctx, c.ID)
	if err != nil {
		return CategoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CategoryOutput{
		ID:             c.ID,
		Title:          c.Title,
		FeaturedBookID: c.FeaturedBookID,
		BooksCount:     count,
	}, nil
}

type AdminSaveCategoryInput struct {
	Title          string
	FeaturedBookID *int64
}

func (u *CategoryUsecase) AdminCreate(ctx context.Context, adminUserID int64, in AdminSaveCategoryInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Title) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "title required")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Title:          strings.TrimSpace(in.Title),
		FeaturedBookID: in.FeaturedBookID,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c.ID, nil
}

func (u *CategoryUsecase) AdminUpdate(ctx context.Context, adminUserID int64, categoryID int64, in AdminSaveCategoryInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:             categoryID,
		Title:          strings.TrimSpace(in.Title),
		FeaturedBookID: in.FeaturedBookID,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDelete はカテゴリ削除。
// 書籍が1冊でも属していたら405で拒否する（先に書籍を消す）。
func (u *CategoryUsecase) AdminDelete(ctx context.Context, adminUserID int64, categoryID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	count, err := u.bookRepo.CountByCategoryID(ctx, categoryID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusMethodNotAllowed, "this category has one or more books in it. delete books first")
	}

	if err := u.categoryRepo.Delete(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
