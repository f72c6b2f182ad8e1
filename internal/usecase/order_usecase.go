package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx           repo.TransactionManager
	customerRepo repo.CustomerRepository
}

func NewOrderUsecase(tx repo.TransactionManager, customerRepo repo.CustomerRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, customerRepo: customerRepo}
}

type PlaceOrderInput struct {
	CartID string
}

type OrderItemOutput struct {
	BookID    int64  `json:"book_id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Status     string            `json:"status"`
	TotalPrice int64             `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートを注文に変換する。ここがシステム唯一の状態遷移。
//
//  1. カート存在＋空チェック（変更前に検証）
//  2. トランザクション内で：注文作成（PENDING）→ 明細スナップショット
//     （unit_price=この瞬間の書籍価格）→ 一括作成 → カート削除
//
// 途中で失敗したら全部ロールバックされ、カートも在庫も元のまま。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.CartID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart_id")
	}

	//リクエスト者のCustomerを解決する（他人名義では注文できない）
	customer, err := u.customerRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "no customer profile")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var out OrderOutput

	//注文処理はトランザクション
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート存在チェック
		if _, err := r.Carts().FindByID(ctx, in.CartID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "no cart with the given id")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート明細取得
		cartItems, err := r.CartItems().ListByCartID(ctx, in.CartID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		//明細ごとに「この瞬間の価格」をスナップショット
		now := time.Now()
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		outItems := make([]OrderItemOutput, 0, len(cartItems))
		var total int64 = 0

		for _, ci := range cartItems {
			b, err := r.Books().FindByID(ctx, ci.BookID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderItems = append(orderItems, model.OrderItem{
				BookID:    ci.BookID,
				Quantity:  ci.Quantity,
				UnitPrice: b.Price,
				CreatedAt: now,
			})
			outItems = append(outItems, OrderItemOutput{
				BookID:    b.ID,
				Title:     b.Title,
				Quantity:  ci.Quantity,
				UnitPrice: b.Price,
			})

			total += b.Price * ci.Quantity
		}

		// 注文作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID: customer.ID,
			Status:     model.OrderStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートは明細ごと削除（注文成立の瞬間に消える）
		if err := r.Carts().Delete(ctx, in.CartID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{
			ID:         orderID,
			CustomerID: customer.ID,
			Status:     string(model.OrderStatusPending),
			TotalPrice: total,
			CreatedAt:  now,
			Items:      outItems,
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	customer, err := u.customerRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return []OrderOutput{}, nil
	}
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ページングはまずは固定で取る
	var outs []OrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByCustomerID(ctx, customer.ID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, u.toOrderOutput(ctx, r, o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// isAdmin=true なら他人の注文も見える
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, userID int64, isAdmin bool, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !isAdmin {
			customer, err := r.Customers().FindByUserID(ctx, userID)
			if err != nil {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			//他人の注文は「存在しない扱い」にする
			if o.CustomerID != customer.ID {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = u.toOrderOutput(ctx, r, o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 表示用タイトルは都度引く（スナップショットは価格と数量だけ）
func (u *OrderUsecase) toOrderOutput(ctx context.Context, r repo.TxRepos, o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		title := ""
		if b, err := r.Books().FindByID(ctx, it.BookID); err == nil {
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
