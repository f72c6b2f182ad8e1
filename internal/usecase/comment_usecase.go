package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CommentUsecase struct {
	commentRepo repo.CommentRepository
	bookRepo    repo.BookRepository
}

func NewCommentUsecase(commentRepo repo.CommentRepository, bookRepo repo.BookRepository) *CommentUsecase {
	return &CommentUsecase{commentRepo: commentRepo, bookRepo: bookRepo}
}

type CreateCommentInput struct {
	Body string
}

// 公開側はAPPROVEDだけ、管理者は全部見える
func (u *CommentUsecase) ListByBook(ctx context.Context, bookID int64, isAdmin bool) ([]model.Comment, error) {
	if bookID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	if _, err := u.bookRepo.FindByID(ctx, bookID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	comments, err := u.commentRepo.ListByBookID(ctx, bookID, !isAdmin)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return comments, nil
}

// 新規コメントはWAITINGで入り、承認されるまで公開されない。
func (u *CommentUsecase) Create(ctx context.Context, bookID int64, in CreateCommentInput) (model.Comment, error) {
	if bookID <= 0 {
		return model.Comment{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if strings.TrimSpace(in.Body) == "" {
		return model.Comment{}, NewHTTPError(http.StatusBadRequest, "body required")
	}

	if _, err := u.bookRepo.FindByID(ctx, bookID); err != nil {
		if err == repo.ErrNotFound {
			return model.Comment{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Comment{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c, err := u.commentRepo.Create(ctx, model.Comment{
		BookID: bookID,
		Body:   strings.TrimSpace(in.Body),
		Status: model.CommentStatusWaiting,
	})
	if err != nil {
		return model.Comment{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CommentUsecase) AdminUpdateStatus(ctx context.Context, adminUserID int64, commentID int64, status string) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if commentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s := model.CommentStatus(status)
	switch s {
	case model.CommentStatusWaiting, model.CommentStatusApproved, model.CommentStatusNotApproved:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	if err := u.commentRepo.UpdateStatus(ctx, commentID, s); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CommentUsecase) AdminDelete(ctx context.Context, adminUserID int64, commentID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if commentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.commentRepo.DeleteByID(ctx, commentID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
