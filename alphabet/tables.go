package alphabet

import "sort"

// 预定义字母表，与已有编码数据保持互通，不可修改
var tables = map[int]string{
	2:  "01",
	8:  "01234567",
	11: "0123456789a",
	16: "0123456789abcdef",
	32: "0123456789ABCDEFGHJKMNPQRSTVWXYZ",
	36: "0123456789abcdefghijklmnopqrstuvwxyz",
	58: "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz",
	62: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	64: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/",
	67: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~",
}

// Table returns the predefined symbol sequence for radix.
func Table(radix int) (string, bool) {
	key, ok := tables[radix]
	return key, ok
}

// Radices lists the radices with a predefined table, ascending.
func Radices() []int {
	radices := make([]int, 0, len(tables))
	for radix := range tables {
		radices = append(radices, radix)
	}
	sort.Ints(radices)
	return radices
}
