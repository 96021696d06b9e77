package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatList текстовое представление списка: [a, b, c]
func FormatList[T fmt.Stringer](list []T) string {
	items := make([]string, 0, len(list))
	for _, item := range list {
		items = append(items, item.String())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// ParseID положительный числовой идентификатор
func ParseID(value string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
