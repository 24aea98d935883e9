package tools

import (
	"strconv"
	"strings"
)

// 判断字符串item是否在指定列表中
func ContainsString(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}

// 将字符串数组转成int数组
func ToIntArray(s []string) ([]int, error) {
	if s == nil {
		return nil, nil
	}
	vs := make([]int, len(s))
	for i, v := range s {
		if val, err := ToInt(v); err != nil {
			return nil, err
		} else {
			vs[i] = val
		}
	}
	return vs, nil
}

// 将字符串转成int
func ToInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// SplitList splits on commas and whitespace, dropping empty items.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ParseInts parses "1,2, 3 4" into a sequence. A blank string is an empty sequence.
func ParseInts(s string) ([]int, error) {
	vs, err := ToIntArray(SplitList(s))
	if err != nil {
		return nil, err
	}
	if vs == nil {
		vs = []int{}
	}
	return vs, nil
}
