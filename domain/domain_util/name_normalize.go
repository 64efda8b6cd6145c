package domain_util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// 括号内容（贪婪匹配：从第一个左括号到最后一个右括号）
var parentheticalPattern = regexp.MustCompile(`\(.*\)`)

// NormalizeName 归一化乐手/署名名称，用于子串比对
// 1. NFC 归一化，避免组合字符与预组合字符不一致
// 2. 截断第一个 en dash / em dash 及其后内容（"Miles Davis – Trumpet"）
// 3. 去除括号内容（"John Coltrane (tenor sax)"）
// 4. 去除首尾空白并转小写
func NormalizeName(name string) string {
	name = norm.NFC.String(name)
	if idx := strings.IndexAny(name, "–—"); idx >= 0 {
		name = name[:idx]
	}
	name = parentheticalPattern.ReplaceAllString(name, "")
	// cases.Caser 有状态，不能跨 goroutine 共享
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// NormalizeNames 批量归一化
func NormalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, NormalizeName(name))
	}
	return out
}

// AnyContains 判断归一化后的名单中是否存在包含 needle 的条目
func AnyContains(haystack []string, needle string) bool {
	for _, item := range haystack {
		if strings.Contains(item, needle) {
			return true
		}
	}
	return false
}
