package auth

import (
	"context"
	"errors"
	"net/http"

	"shoppingpaglu/internal/domain/model"
	"shoppingpaglu/internal/repository"
	"shoppingpaglu/internal/usecase"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email    string
	Password string
}

// 会員登録の出力
type RegisterUserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// DI
func NewRegisterUserUsecase(userRepo repository.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// 会員登録実行
// emailの正規化・パスワードポリシーは無し（送られたまま扱う）。
// 重複は事前検索せずDBの一意制約に任せる（同時登録でも1件だけ成功）。
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return out, usecase.NewHTTPError(usecase.ErrInvalidInput, http.StatusBadRequest, "Password is too long.")
		}
		return out, usecase.NewInternalError(err)
	}

	user := &model.User{
		Email:    in.Email,
		Password: hashed, // ハッシュを保存（平文は保存しない）
	}

	// DBへ保存
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return out, usecase.NewHTTPError(usecase.ErrDuplicateEmail, http.StatusBadRequest, "This email is already registered.")
		}
		return out, usecase.NewStorageError("Server error", err)
	}

	out.ID = user.ID
	out.Email = user.Email
	return out, nil
}
