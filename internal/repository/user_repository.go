package repository

import (
	"context"
	"errors"

	"shoppingpaglu/internal/domain/model"
)

// 一意制約違反（emailの重複など）を統一
var ErrDuplicate = errors.New("duplicate key")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（email重複はErrDuplicate）
	Create(ctx context.Context, user *model.User) error
	//メールからユーザーを一件取得する。いなければErrNotFound
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
