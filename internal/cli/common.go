package cli

import (
	"encoding/hex"
	"flag"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/basen"
	"github.com/treeforest/basen/config"
	"github.com/treeforest/basen/registry"
)

// codecFlags 选择编解码器的公共参数，覆盖配置文件
type codecFlags struct {
	radix    *int
	alphabet *string
	name     *string
	strategy *string
	hash     *string
}

func addCodecFlags(f *flag.FlagSet) *codecFlags {
	return &codecFlags{
		radix:    f.Int("radix", 0, "预定义字母表的基数 (2 8 11 16 32 36 58 62 64 67)"),
		alphabet: f.String("alphabet", "", "自定义字母表"),
		name:     f.String("name", "", "注册表中的字母表名称"),
		strategy: f.String("strategy", "", "转换算法 loop|bigint"),
		hash:     f.String("hash", "", "校验哈希 sha256|sha3|blake2b"),
	}
}

// apply overrides conf with the flags that were set.
func (cf *codecFlags) apply(conf config.Config) config.Config {
	if *cf.radix != 0 || *cf.alphabet != "" || *cf.name != "" {
		conf.Radix, conf.Alphabet, conf.Name = *cf.radix, *cf.alphabet, *cf.name
	}
	if *cf.strategy != "" {
		conf.Strategy = *cf.strategy
	}
	if *cf.hash != "" {
		conf.Hash = *cf.hash
	}
	return conf
}

// ioFlags 输入输出参数
type ioFlags struct {
	in  *string
	hex *bool
}

func addIOFlags(f *flag.FlagSet) *ioFlags {
	return &ioFlags{
		in:  f.String("in", "", "输入，缺省时读取标准输入"),
		hex: f.Bool("hex", false, "二进制数据以十六进制表示"),
	}
}

func (c *Command) readInput(iof *ioFlags) (string, error) {
	if *iof.in != "" {
		return *iof.in, nil
	}
	data, err := ioutil.ReadAll(c.stdin)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return string(data), nil
}

// readBinary returns the payload to encode.
func (c *Command) readBinary(iof *ioFlags) ([]byte, error) {
	in, err := c.readInput(iof)
	if err != nil {
		return nil, err
	}
	if !*iof.hex {
		return []byte(in), nil
	}
	b, err := hex.DecodeString(strings.TrimSpace(in))
	if err != nil {
		return nil, errors.Wrap(err, "decode hex input")
	}
	return b, nil
}

// readText returns the text to decode with surrounding whitespace removed.
func (c *Command) readText(iof *ioFlags) (string, error) {
	in, err := c.readInput(iof)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(in), nil
}

func (c *Command) writeBinary(iof *ioFlags, b []byte) error {
	var err error
	if *iof.hex {
		_, err = io.WriteString(c.stdout, hex.EncodeToString(b)+"\n")
	} else {
		_, err = c.stdout.Write(b)
	}
	return errors.Wrap(err, "write output")
}

func (c *Command) writeLine(s string) error {
	_, err := io.WriteString(c.stdout, s+"\n")
	return errors.Wrap(err, "write output")
}

// codec builds the codec for cf, opening the registry only for names.
func (c *Command) codec(cf *codecFlags) (*basen.Codec, func(), error) {
	conf := cf.apply(*c.conf)
	if conf.Name == "" {
		codec, err := conf.Codec(nil)
		return codec, func() {}, err
	}

	reg, err := registry.Open(conf.RegistryPath, nil)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = reg.Close() }
	codec, err := conf.Codec(reg)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return codec, closeFn, nil
}
