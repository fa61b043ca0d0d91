package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"shoppingpaglu/internal/repository"
	"shoppingpaglu/internal/usecase"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Email     string
	Token     string
	ExpiresIn int
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    usecase.Clock

	//未登録emailでも照合1回分の時間をかけるためのダミー
	dummyOnce sync.Once
	dummyHash string
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock usecase.Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
// 未登録emailとパスワード違いは同じエラー（どちらか分からないようにする）
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			u.verifier.Verify(in.Password, u.dummy())
			return out, invalidCredentials()
		}
		return out, usecase.NewStorageError("Server error", err)
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.Password); !ok {
		return out, invalidCredentials()
	}

	//AccessToken発行
	now := u.clock.Now()
	token, exp, err := u.issuer.Issue(user.ID, user.Email, now)
	if err != nil {
		return out, usecase.NewInternalError(err)
	}

	out.Email = user.Email
	out.Token = token
	out.ExpiresIn = int(exp.Sub(now) / time.Second)
	return out, nil
}

func (u *LoginUsecase) dummy() string {
	u.dummyOnce.Do(func() {
		h, err := u.hasher.Hash("not-a-real-password")
		if err == nil {
			u.dummyHash = h
		}
	})
	return u.dummyHash
}

func invalidCredentials() error {
	return usecase.NewHTTPError(usecase.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password")
}
