package domain_util

import "time"

// PuzzleDateLayout 每日谜题日期格式（YYYY-MM-DD）
const PuzzleDateLayout = "2006-01-02"

// PuzzleDateOf 返回给定时间对应的 UTC 日历日期
func PuzzleDateOf(t time.Time) string {
	return t.UTC().Format(PuzzleDateLayout)
}

// IsPuzzleDate 检查字符串是否为合法的 YYYY-MM-DD 日期
func IsPuzzleDate(s string) bool {
	if len(s) != len(PuzzleDateLayout) {
		return false
	}
	_, err := time.Parse(PuzzleDateLayout, s)
	return err == nil
}

// Clock 可注入的时间源，测试中替换为固定时间
type Clock func() time.Time

// SystemClock 默认时间源
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Today 返回时间源当前的谜题日期
func (c Clock) Today() string {
	if c == nil {
		return PuzzleDateOf(SystemClock())
	}
	return PuzzleDateOf(c())
}
