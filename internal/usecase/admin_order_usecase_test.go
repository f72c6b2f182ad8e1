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

func TestAdminOrderUsecase_UpdateStatus_PendingToComplete(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)
	itemRepo := new(MockOrderItemRepo)
	bookRepo := new(MockBookRepo)

	orderRepo.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, CustomerID: 5, Status: model.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(100), model.OrderStatusComplete).Return(nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{}, nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo, itemRepo, bookRepo)

	out, err := uc.UpdateStatus(ctx, 1, 100, "COMPLETE")
	assert.NoError(t, err)
	assert.Equal(t, "COMPLETE", out.Status)

	orderRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_PendingToFailed(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)
	itemRepo := new(MockOrderItemRepo)

	orderRepo.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(100), model.OrderStatusFailed).Return(nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{}, nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo, itemRepo, new(MockBookRepo))

	out, err := uc.UpdateStatus(ctx, 1, 100, "FAILED")
	assert.NoError(t, err)
	assert.Equal(t, "FAILED", out.Status)
}

// 確定済みからは動かせない
func TestAdminOrderUsecase_UpdateStatus_CompleteIsTerminal(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)

	orderRepo.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusComplete}, nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo, new(MockOrderItemRepo), new(MockBookRepo))

	_, err := uc.UpdateStatus(ctx, 1, 100, "FAILED")
	assertErrContains(t, err, "can not be changed")

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// 同じstatusへの変更はno-opで成功
func TestAdminOrderUsecase_UpdateStatus_SameStatusNoop(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)
	itemRepo := new(MockOrderItemRepo)

	orderRepo.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusComplete}, nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{}, nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo, itemRepo, new(MockBookRepo))

	out, err := uc.UpdateStatus(ctx, 1, 100, "COMPLETE")
	assert.NoError(t, err)
	assert.Equal(t, "COMPLETE", out.Status)

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(MockOrderRepo), new(MockOrderItemRepo), new(MockBookRepo))

	_, err := uc.UpdateStatus(context.Background(), 1, 100, "CANCELED")
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_List_FilterByStatus(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)
	itemRepo := new(MockOrderItemRepo)

	orderRepo.On("ListAdmin", mock.Anything, repo.AdminOrderListFilter{Page: 1, Limit: 20, Status: "PENDING"}).
		Return([]model.Order{{ID: 1, Status: model.OrderStatusPending}}, int64(1), nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(1)).Return([]model.OrderItem{}, nil)

	uc := usecase.NewAdminOrderUsecase(orderRepo, itemRepo, new(MockBookRepo))

	out, err := uc.List(ctx, 1, usecase.AdminListOrdersInput{Page: 1, Limit: 20, Status: "PENDING"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
}

func TestAdminOrderUsecase_List_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(MockOrderRepo), new(MockOrderItemRepo), new(MockBookRepo))

	_, err := uc.List(context.Background(), 1, usecase.AdminListOrdersInput{Page: 1, Limit: 20, Status: "SHIPPED"})
	assertErrContains(t, err, "invalid status")
}
