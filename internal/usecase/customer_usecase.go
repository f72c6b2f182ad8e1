package usecase

import (
	"context"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	addressRepo  repo.AddressRepository
}

func NewCustomerUsecase(customerRepo repo.CustomerRepository, addressRepo repo.AddressRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo, addressRepo: addressRepo}
}

type AddressDTO struct {
	Province string `json:"province"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Detail   string `json:"detail"`
}

type CustomerDTO struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Phone     string      `json:"phone"`
	BirthDate *time.Time  `json:"birth_date,omitempty"`
	Address   *AddressDTO `json:"address,omitempty"`
}

type CustomerListDTO struct {
	Items []CustomerDTO `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type UpdateProfileRequest struct {
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date"`
}

type UpsertAddressRequest struct {
	Province string `json:"province"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Detail   string `json:"detail"`
}

// 管理者向けの一覧
func (u *CustomerUsecase) List(ctx context.Context, page int, limit int) (*CustomerListDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	customers, total, err := u.customerRepo.List(ctx, page, limit)
	if err != nil {
		return nil, ErrInternal
	}

	items := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		items = append(items, u.toCustomerDTO(ctx, c))
	}

	return &CustomerListDTO{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// isAdmin=false のときは本人のプロフィールしか見えない
func (u *CustomerUsecase) Get(ctx context.Context, requesterUserID int64, isAdmin bool, customerID int64) (*CustomerDTO, error) {
	if requesterUserID <= 0 {
		return nil, ErrUnauthorized
	}
	if customerID <= 0 {
		return nil, ErrValidation
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInternal
	}

	if !isAdmin && c.UserID != requesterUserID {
		return nil, ErrForbidden
	}

	dto := u.toCustomerDTO(ctx, c)
	return &dto, nil
}

// /customers/me
func (u *CustomerUsecase) Me(ctx context.Context, userID int64) (*CustomerDTO, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	c, err := u.customerRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInternal
	}

	dto := u.toCustomerDTO(ctx, c)
	return &dto, nil
}

func (u *CustomerUsecase) UpdateProfile(ctx context.Context, requesterUserID int64, isAdmin bool, customerID int64, req UpdateProfileRequest) (*CustomerDTO, error) {
	if requesterUserID <= 0 {
		return nil, ErrUnauthorized
	}
	if customerID <= 0 {
		return nil, ErrValidation
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInternal
	}

	if !isAdmin && c.UserID != requesterUserID {
		return nil, ErrForbidden
	}

	c.Phone = strings.TrimSpace(req.Phone)
	c.BirthDate = req.BirthDate

	if err := u.customerRepo.Update(ctx, c); err != nil {
		return nil, ErrInternal
	}

	dto := u.toCustomerDTO(ctx, c)
	return &dto, nil
}

// UpsertAddress は住所の作成と更新を兼ねる。
// 住所はCustomerと1:1なので、2回目以降は上書き（重複エラーにしない）。
func (u *CustomerUsecase) UpsertAddress(ctx context.Context, requesterUserID int64, isAdmin bool, customerID int64, req UpsertAddressRequest) (*AddressDTO, error) {
	if requesterUserID <= 0 {
		return nil, ErrUnauthorized
	}
	if customerID <= 0 {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.Province) == "" || strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Street) == "" {
		return nil, ErrValidation
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInternal
	}

	if !isAdmin && c.UserID != requesterUserID {
		return nil, ErrForbidden
	}

	a, err := u.addressRepo.Upsert(ctx, model.Address{
		CustomerID: c.ID,
		Province:   strings.TrimSpace(req.Province),
		City:       strings.TrimSpace(req.City),
		Street:     strings.TrimSpace(req.Street),
		Detail:     strings.TrimSpace(req.Detail),
	})
	if err != nil {
		return nil, ErrInternal
	}

	return &AddressDTO{
		Province: a.Province,
		City:     a.City,
		Street:   a.Street,
		Detail:   a.Detail,
	}, nil
}

// 住所は無ければnilのまま返す
func (u *CustomerUsecase) toCustomerDTO(ctx context.Context, c model.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Phone:     c.Phone,
		BirthDate: c.BirthDate,
	}

	if a, err := u.addressRepo.FindByCustomerID(ctx, c.ID); err == nil {
		dto.Address = &AddressDTO{
			Province: a.Province,
			City:     a.City,
			Street:   a.Street,
			Detail:   a.Detail,
		}
	}

	return dto
}
