package model

import "time"

// User 钱包地址即身份，首次签名登录时自动注册
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Address   string `gorm:"uniqueIndex;size:64;not null"` // 统一存小写
	CreatedAt time.Time
	UpdatedAt time.Time
}
