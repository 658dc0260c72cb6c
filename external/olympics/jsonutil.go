package olympics

import (
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// parseJSONLoose decodes a body that should be JSON but may carry proxy
// wrapping noise. It first tries the body as-is, then the widest substring
// bounded by the first opening and last closing bracket.
func parseJSONLoose(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var direct any
	if err := sonic.Unmarshal([]byte(trimmed), &direct); err == nil {
		return direct
	}

	start := -1
	for _, marker := range []string{"{", "["} {
		if idx := strings.Index(trimmed, marker); idx >= 0 && (start < 0 || idx < start) {
			start = idx
		}
	}
	if start < 0 {
		return nil
	}

	end := strings.LastIndex(trimmed, "}")
	if arrEnd := strings.LastIndex(trimmed, "]"); arrEnd > end {
		end = arrEnd
	}
	if end <= start {
		return nil
	}

	var loose any
	if err := sonic.Unmarshal([]byte(trimmed[start:end+1]), &loose); err != nil {
		return nil
	}
	return loose
}

var serializedHTMLReplacer = strings.NewReplacer(
	`\u0022`, `"`,
	`\x22`, `"`,
	"&quot;", `"`,
	`\"`, `"`,
	`\\`, `\`,
)

// normalizeSerializedHTML undoes the quote escaping seen when a page embeds
// its payload as a serialized string.
func normalizeSerializedHTML(html string) string {
	return serializedHTMLReplacer.Replace(html)
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// stringify renders a scalar the way loosely typed feeds expect: nil maps
// to the empty string, numbers drop a trailing ".0".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// isTruthy mirrors the falsy set of loosely typed feeds: nil, false, empty
// string and numeric zero.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

func firstTruthy(values ...any) any {
	for _, v := range values {
		if isTruthy(v) {
			return v
		}
	}
	return nil
}

func coalesce(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// parseMedalNumber coerces feed values to a count. It takes the leading
// base-10 integer of the string form, so "12", 12 and "12 medals" all read
// as 12 while garbage reads as 0.
func parseMedalNumber(v any) int {
	s := stringify(v)
	if s == "" {
		s = "0"
	}
	s = strings.TrimSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}

	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0
	}
	return n
}
