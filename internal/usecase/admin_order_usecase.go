package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理者向けの注文操作。statusの更新はここだけ。
type AdminOrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	bookRepo      repo.BookRepository
}

func NewAdminOrderUsecase(
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	bookRepo repo.BookRepository,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		bookRepo:      bookRepo,
	}
}

type AdminListOrdersInput struct {
	Page   int
	Limit  int
	Status string
}

type AdminOrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, adminUserID int64, in AdminListOrdersInput) (AdminOrderListOutput, error) {
	if adminUserID <= 0 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}
	switch model.OrderStatus(in.Status) {
	case "", model.OrderStatusPending, model.OrderStatusComplete, model.OrderStatusFailed:
	default:
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orderRepo.ListAdmin(ctx, repo.AdminOrderListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
	})
	if err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		oi, err := u.orderItemRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			return AdminOrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items = append(items, u.toOutput(ctx, o, oi))
	}

	return AdminOrderListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

// UpdateStatus は注文の唯一の可変フィールドを更新する。
// 許される遷移は PENDING → COMPLETE / FAILED だけ。
// 同じstatusへの変更は何もしないで成功扱いにする。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, adminUserID int64, orderID int64, status string) (OrderOutput, error) {
	if adminUserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	next := model.OrderStatus(status)
	switch next {
	case model.OrderStatusPending, model.OrderStatusComplete, model.OrderStatusFailed:
	default:
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if o.Status != next {
		//確定済み（COMPLETE/FAILED）からは動かせない
		if o.Status != model.OrderStatusPending {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "order status can not be changed after completion")
		}
		//PENDINGに戻すのも不可
		if next == model.OrderStatusPending {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status transition")
		}

		if err := u.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
			if err == repo.ErrNotFound {
				return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
			}
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		o.Status = next
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.toOutput(ctx, o, items), nil
}

func (u *AdminOrderUsecase) toOutput(ctx context.Context, o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		title := ""
		if b, err := u.bookRepo.FindByID(ctx, it.BookID); err == nil {
			title = b.Title
		}

		outItems = append(outItems, OrderItemOutput{
			BookID:    it.BookID,
			Title:     title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
		total += it.UnitPrice * it.Quantity
	}

	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		TotalPrice: total,
		CreatedAt:  o.CreatedAt,
		Items:      outItems,
	}
}
