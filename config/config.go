package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/treeforest/basen"
	"github.com/treeforest/basen/alphabet"
	"gopkg.in/yaml.v3"
)

var ErrNoAlphabet = errors.New("no alphabet configured")

type Config struct {
	// 编解码配置，优先级 Name > Alphabet > Radix
	Radix    int    `yaml:"radix"`    // 预定义字母表的基数
	Alphabet string `yaml:"alphabet"` // 自定义字母表
	Name     string `yaml:"name"`     // 注册表中的字母表名称
	Strategy string `yaml:"strategy"` // loop | bigint
	Hash     string `yaml:"hash"`     // sha256 | sha3 | blake2b

	// 服务配置
	HttpServerPort int    `yaml:"http_server_port"` // web监听端口
	RegistryPath   string `yaml:"registry_path"`    // 字母表注册表数据库路径

	Debug bool `yaml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Radix:          58,
		Strategy:       "loop",
		Hash:           "sha256",
		HttpServerPort: 8080,
		RegistryPath:   ".",
	}
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Load reads path over DefaultConfig, so absent keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	conf := DefaultConfig()
	if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}

	return conf, nil
}

// Lookup resolves registered alphabet names.
type Lookup interface {
	Alphabet(name string) (*alphabet.Alphabet, error)
}

// Codec builds the codec the config describes. lookup may be nil when
// Name is empty.
func (c *Config) Codec(lookup Lookup) (*basen.Codec, error) {
	abc, err := c.alphabet(lookup)
	if err != nil {
		return nil, err
	}
	id, err := basen.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	hash, err := basen.ParseHash(c.Hash)
	if err != nil {
		return nil, err
	}
	return id.NewCodec(abc, basen.WithHash(hash)), nil
}

func (c *Config) alphabet(lookup Lookup) (*alphabet.Alphabet, error) {
	switch {
	case c.Name != "":
		if lookup == nil {
			return nil, errors.Errorf("alphabet %q requested without a registry", c.Name)
		}
		return lookup.Alphabet(c.Name)
	case c.Alphabet != "":
		return alphabet.FromString(c.Alphabet)
	case c.Radix != 0:
		return alphabet.Predefined(c.Radix)
	}
	return nil, ErrNoAlphabet
}
