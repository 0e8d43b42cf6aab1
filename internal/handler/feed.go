package handler

import (
	"strings"
	"time"
)

// parseSort 把 sort/order 译成排序列与方向。
// 未知或缺省的 sort（包括客户端传来的字面量 "null"）一律按最新在前。
func parseSort(sortBy, order string) (column string, desc bool) {
	switch strings.ToLower(sortBy) {
	case "rec":
		column = "created_at"
	case "top":
		column = "upvotes"
	case "rand":
		column = "shares"
	default:
		return "created_at", true
	}
	return column, strings.ToLower(order) == "desc"
}

// parseSince 时间窗口参数转截止时间，未识别的窗口忽略
func parseSince(now time.Time, since string) time.Time {
	switch since {
	case "1h":
		return now.Add(-time.Hour)
	case "6h":
		return now.Add(-6 * time.Hour)
	case "24h":
		return now.Add(-24 * time.Hour)
	case "7d":
		return now.Add(-7 * 24 * time.Hour)
	}
	return time.Time{}
}
