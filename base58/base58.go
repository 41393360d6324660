// Package base58 is the Bitcoin base58 alphabet wired to a basen codec.
package base58

import (
	"github.com/treeforest/basen"
	"github.com/treeforest/basen/alphabet"
)

const (
	// base58 编码基数表
	Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var codec *basen.Codec

func init() {
	abc, err := alphabet.FromString(Alphabet)
	if err != nil {
		panic(err)
	}
	codec = basen.New(abc)
}

// Codec returns the shared base58 codec.
func Codec() *basen.Codec {
	return codec
}

func Encode(b []byte) string {
	// 合法字母表上的编码不会失败
	s, err := codec.Encode(b)
	if err != nil {
		panic(err)
	}
	return s
}

func Decode(s string) ([]byte, error) {
	return codec.Decode(s)
}

// CheckEncode appends the double SHA-256 tag before encoding.
func CheckEncode(b []byte) string {
	s, err := codec.EncodeCheck(b)
	if err != nil {
		panic(err)
	}
	return s
}

func CheckDecode(s string) ([]byte, error) {
	return codec.DecodeCheck(s)
}
