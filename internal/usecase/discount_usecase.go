package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type DiscountUsecase struct {
	discountRepo repo.DiscountRepository
	bookRepo     repo.BookRepository
}

func NewDiscountUsecase(discountRepo repo.DiscountRepository, bookRepo repo.BookRepository) *DiscountUsecase {
	return &DiscountUsecase{discountRepo: discountRepo, bookRepo: bookRepo}
}

type DiscountOutput struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	BookIDs     []int64 `json:"book_ids"`
}

type AdminSaveDiscountInput struct {
	Amount      float64
	Description string
	BookIDs     []int64
}

func (u *DiscountUsecase) List(ctx context.Context) ([]DiscountOutput, error) {
	ds, err := u.discountRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]DiscountOutput, 0, len(ds))
	for _, d := range ds {
		ids, err := u.discountRepo.ListBookIDs(ctx, d.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, DiscountOutput{
			ID:          d.ID,
			Amount:      d.Amount,
			Description: d.Description,
			BookIDs:     ids,
		})
	}
	return outs, nil
}

func (u *DiscountUsecase) Get(ctx context.Context, discountID int64) (DiscountOutput, error) {
	if discountID <= 0 {
		return DiscountOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	d, err := u.discountRepo.FindByID(ctx, discountID)
	if err == repo.ErrNotFound {
		return DiscountOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return DiscountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ids, err := u.discountRepo.ListBookIDs(ctx, d.ID)
	if err != nil {
		return DiscountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DiscountOutput{
		ID:          d.ID,
		Amount:      d.Amount,
		Description: d.Description,
		BookIDs:     ids,
	}, nil
}

func (u *DiscountUsecase) AdminCreate(ctx context.Context, adminUserID int64, in AdminSaveDiscountInput) (DiscountOutput, error) {
	if adminUserID <= 0 {
		return DiscountOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validateSaveInput(ctx, in); err != nil {
		return DiscountOutput{}, err
	}

	d, err := u.discountRepo.Create(ctx, model.Discount{
		Amount:      in.Amount,
		Description: in.Description,
	})
	if err != nil {
		return DiscountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.discountRepo.ReplaceBooks(ctx, d.ID, in.BookIDs); err != nil {
		return DiscountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DiscountOutput{
		ID:          d.ID,
		Amount:      d.Amount,
		Description: d.Description,
		BookIDs:     in.BookIDs,
	}, nil
}

func (u *DiscountUsecase) AdminUpdate(ctx context.Context, adminUserID int64, discountID int64, in AdminSaveDiscountInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if discountID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validateSaveInput(ctx, in); err != nil {
		return err
	}

	err := u.discountRepo.Update(ctx, model.Discount{
		ID:          discountID,
		Amount:      in.Amount,
		Description: in.Description,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//対象書籍の付け替え
	if err := u.discountRepo.ReplaceBooks(ctx, discountID, in.BookIDs); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *DiscountUsecase) AdminDelete(ctx context.Context, adminUserID int64, discountID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if discountID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.discountRepo.Delete(ctx, discountID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *DiscountUsecase) validateSaveInput(ctx context.Context, in AdminSaveDiscountInput) error {
	if in.Amount <= 0 || in.Amount > 100 {
		return NewHTTPError(http.StatusBadRequest, "amount must be between 0 and 100")
	}

	//紐づけ先の書籍は実在チェック
	for _, id := range in.BookIDs {
		if _, err := u.bookRepo.FindByID(ctx, id); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid book_ids")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}
