package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// エラーの種類（handlerはHTTPErrorのStatus/Messageだけを返す）
var (
	//400 登録済みのemail
	ErrDuplicateEmail = errors.New("duplicate email")
	//401 email/passwordの組が一致しない
	ErrInvalidCredentials = errors.New("invalid credentials")
	//404
	ErrNotFound = errors.New("not found")
	//400 カートが空
	ErrEmptyCart = errors.New("empty cart")
	//400 入力不正
	ErrInvalidInput = errors.New("invalid input")
	//500 DBまわりの失敗全般
	ErrStorage = errors.New("storage error")
	//500 DB以外の内部エラー
	ErrInternal = errors.New("internal error")
)

type HTTPError struct {
	Kind    error
	Status  int
	Message string
	Err     error // 原因（ログ用、クライアントには返さない）
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// errors.IsでKindと原因の両方を辿れるようにする
func (e *HTTPError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func NewHTTPError(kind error, status int, message string) error {
	return &HTTPError{
		Kind:    kind,
		Status:  status,
		Message: message,
	}
}

// DB失敗は全部500。リトライはしない
func NewStorageError(message string, cause error) error {
	return &HTTPError{
		Kind:    ErrStorage,
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     cause,
	}
}

func NewInternalError(cause error) error {
	return &HTTPError{
		Kind:    ErrInternal,
		Status:  http.StatusInternalServerError,
		Message: "Server error",
		Err:     cause,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
