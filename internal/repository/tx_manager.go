package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	//fnがエラーを返したらrollback
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
	//Txなし。各書き込みはその場で確定する
	WithoutTx(ctx context.Context, fn func(r TxRepos) error) error
}
