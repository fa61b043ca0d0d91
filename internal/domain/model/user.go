package model

// 会員
// Passwordにはbcryptハッシュを保存する（カラム名は既存のpasswordのまま）
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `gorm:"column:password" json:"-"`
}
