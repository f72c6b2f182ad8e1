package repository

import (
	"app/internal/domain/model"
	"context"
)

type CommentRepository interface {
	// onlyApproved=true なら公開分（APPROVED）だけ返す
	ListByBookID(ctx context.Context, bookID int64, onlyApproved bool) ([]model.Comment, error)
	Create(ctx context.Context, c model.Comment) (model.Comment, error)
	UpdateStatus(ctx context.Context, commentID int64, status model.CommentStatus) error
	DeleteByID(ctx context.Context, commentID int64) error
}
