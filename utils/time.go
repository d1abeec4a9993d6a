package utils

import (
	"fmt"
	"time"
)

// DisplayTimeLayout 前端展示和录入比赛时间使用的格式
const DisplayTimeLayout = "2006-01-02 15:04"

var contestTimeLayouts = []string{
	DisplayTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseContestTime 按本地时区解析比赛时间字符串
func ParseContestTime(s string) (time.Time, bool) {
	for _, layout := range contestTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatClock 将剩余时长格式化为 HH:MM:SS，负值按 0 处理
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseClock 解析 HH:MM:SS，格式不合法时返回 0
func ParseClock(s string) time.Duration {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
}
