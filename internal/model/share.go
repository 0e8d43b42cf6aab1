package model

import "time"

// 分享渠道枚举，未识别的渠道一律归入 GENERIC
const (
	MediumTwitter  = "TWITTER"
	MediumTelegram = "TELEGRAM"
	MediumDiscord  = "DISCORD"
	MediumWhatsapp = "WHATSAPP"
	MediumGeneric  = "GENERIC"
)

// Share (post, sharer, medium) 唯一，Clicks 单调递增
type Share struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_post_sharer_medium"`
	SharerID  uint64 `gorm:"not null;uniqueIndex:uk_post_sharer_medium"`
	Medium    string `gorm:"size:16;not null;uniqueIndex:uk_post_sharer_medium"`
	Clicks    int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeMedium 非法渠道值降级为 GENERIC
func NormalizeMedium(m string) string {
	switch m {
	case MediumTwitter, MediumTelegram, MediumDiscord, MediumWhatsapp, MediumGeneric:
		return m
	}
	return MediumGeneric
}
