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

func TestCustomerUsecase_Me_NotFound(t *testing.T) {
	ctx := context.Background()

	custRepo := new(MockCustomerRepo)
	custRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{}, repo.ErrNotFound)

	uc := usecase.NewCustomerUsecase(custRepo, new(MockAddressRepo))

	_, err := uc.Me(ctx, 1)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestCustomerUsecase_Me_IncludesAddress(t *testing.T) {
	ctx := context.Background()

	custRepo := new(MockCustomerRepo)
	addrRepo := new(MockAddressRepo)

	custRepo.On("FindByUserID", mock.Anything, int64(1)).Return(model.Customer{ID: 5, UserID: 1}, nil)
	addrRepo.On("FindByCustomerID", mock.Anything, int64(5)).Return(model.Address{
		CustomerID: 5, Province: "Tokyo", City: "Shibuya", Street: "1-2-3",
	}, nil)

	uc := usecase.NewCustomerUsecase(custRepo, addrRepo)

	out, err := uc.Me(ctx, 1)
	assert.NoError(t, err)
	assert.NotNil(t, out.Address)
	assert.Equal(t, "Tokyo", out.Address.Province)
}

// 他人のプロフィールは触れない
func TestCustomerUsecase_UpsertAddress_Forbidden(t *testing.T) {
	ctx := context.Background()

	custRepo := new(MockCustomerRepo)
	addrRepo := new(MockAddressRepo)

	custRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Customer{ID: 5, UserID: 99}, nil)

	uc := usecase.NewCustomerUsecase(custRepo, addrRepo)

	_, err := uc.UpsertAddress(ctx, 1, false, 5, usecase.UpsertAddressRequest{
		Province: "Tokyo", City: "Shibuya", Street: "1-2-3",
	})
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	addrRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

// 2回目のPUTは上書きになり重複エラーにはならない
func TestCustomerUsecase_UpsertAddress_Overwrites(t *testing.T) {
	ctx := context.Background()

	custRepo := new(MockCustomerRepo)
	addrRepo := new(MockAddressRepo)

	custRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Customer{ID: 5, UserID: 1}, nil)
	addrRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(a model.Address) bool {
		return a.CustomerID == 5 && a.Province == "Osaka"
	})).Return(model.Address{CustomerID: 5, Province: "Osaka", City: "Kita", Street: "4-5-6"}, nil)

	uc := usecase.NewCustomerUsecase(custRepo, addrRepo)

	out, err := uc.UpsertAddress(ctx, 1, false, 5, usecase.UpsertAddressRequest{
		Province: "Osaka", City: "Kita", Street: "4-5-6",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Osaka", out.Province)

	addrRepo.AssertExpectations(t)
}

func TestCustomerUsecase_UpsertAddress_ValidationError(t *testing.T) {
	uc := usecase.NewCustomerUsecase(new(MockCustomerRepo), new(MockAddressRepo))

	_, err := uc.UpsertAddress(context.Background(), 1, false, 5, usecase.UpsertAddressRequest{
		Province: "", City: "Shibuya", Street: "1-2-3",
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCustomerUsecase_Get_AdminSeesAnyProfile(t *testing.T) {
	ctx := context.Background()

	custRepo := new(MockCustomerRepo)
	addrRepo := new(MockAddressRepo)

	custRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Customer{ID: 5, UserID: 99}, nil)
	addrRepo.On("FindByCustomerID", mock.Anything, int64(5)).Return(model.Address{}, repo.ErrNotFound)

	uc := usecase.NewCustomerUsecase(custRepo, addrRepo)

	out, err := uc.Get(ctx, 1, true, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Nil(t, out.Address)
}
