package cli

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/treeforest/basen/alphabet"
	"github.com/treeforest/basen/config"
	"github.com/treeforest/basen/ident"
	"github.com/treeforest/basen/pkg/graceful"
	"github.com/treeforest/basen/registry"
	"github.com/treeforest/basen/server"
	log "github.com/treeforest/logger"
)

const shutdownTimeout = 5 * time.Second

var ErrUsage = errors.New("invalid command usage")

type Command struct {
	conf   *config.Config
	stdin  io.Reader
	stdout io.Writer
}

func NewCommand(conf *config.Config, stdin io.Reader, stdout io.Writer) *Command {
	return &Command{conf: conf, stdin: stdin, stdout: stdout}
}

func (c *Command) printUsage() {
	w := c.stdout
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "\tencode [-in DATA] [-hex] -- 编码\n")
	fmt.Fprintf(w, "\tdecode [-in TEXT] [-hex] -- 解码\n")
	fmt.Fprintf(w, "\tencodecheck [-in DATA] [-hex] -- 附加校验码后编码\n")
	fmt.Fprintf(w, "\tdecodecheck [-in TEXT] [-hex] -- 解码并校验\n")
	fmt.Fprintf(w, "\t\t-radix R | -alphabet SYMBOLS | -name NAME -- 选择字母表\n")
	fmt.Fprintf(w, "\t\t-strategy loop|bigint -- 转换算法\n")
	fmt.Fprintf(w, "\t\t-hash sha256|sha3|blake2b -- 校验哈希\n")
	fmt.Fprintf(w, "\tident -- 生成紧凑的 UUID 标识\n")
	fmt.Fprintf(w, "\tregister -name NAME -symbols SYMBOLS -- 注册自定义字母表\n")
	fmt.Fprintf(w, "\tunregister -name NAME -- 删除自定义字母表\n")
	fmt.Fprintf(w, "\talphabets -- 列出所有字母表\n")
	fmt.Fprintf(w, "\tserve [-port PORT] -- 启动 HTTP 服务\n")
}

func parseCommand(f *flag.FlagSet, args []string) bool {
	f.SetOutput(ioutil.Discard)
	if err := f.Parse(args); err != nil {
		log.Warn("parse command failed: ", err)
		return false
	}
	return f.Parsed()
}

// Run executes the subcommand named by args[0].
func (c *Command) Run(args []string) error {
	if len(args) < 1 {
		c.printUsage()
		return ErrUsage
	}

	// 编解码
	cmdEncode := flag.NewFlagSet("encode", flag.ContinueOnError)
	encodeCodec, encodeIO := addCodecFlags(cmdEncode), addIOFlags(cmdEncode)
	cmdDecode := flag.NewFlagSet("decode", flag.ContinueOnError)
	decodeCodec, decodeIO := addCodecFlags(cmdDecode), addIOFlags(cmdDecode)
	cmdEncodeCheck := flag.NewFlagSet("encodecheck", flag.ContinueOnError)
	encodeCheckCodec, encodeCheckIO := addCodecFlags(cmdEncodeCheck), addIOFlags(cmdEncodeCheck)
	cmdDecodeCheck := flag.NewFlagSet("decodecheck", flag.ContinueOnError)
	decodeCheckCodec, decodeCheckIO := addCodecFlags(cmdDecodeCheck), addIOFlags(cmdDecodeCheck)
	// 标识
	cmdIdent := flag.NewFlagSet("ident", flag.ContinueOnError)
	identCodec := addCodecFlags(cmdIdent)
	// 注册表
	cmdRegister := flag.NewFlagSet("register", flag.ContinueOnError)
	argRegisterName := cmdRegister.String("name", "", "字母表名称")
	argRegisterSymbols := cmdRegister.String("symbols", "", "字母表符号序列")
	cmdUnregister := flag.NewFlagSet("unregister", flag.ContinueOnError)
	argUnregisterName := cmdUnregister.String("name", "", "字母表名称")
	cmdAlphabets := flag.NewFlagSet("alphabets", flag.ContinueOnError)
	// 服务
	cmdServe := flag.NewFlagSet("serve", flag.ContinueOnError)
	argServePort := cmdServe.Int("port", 0, "web监听端口")

	rest := args[1:]
	switch args[0] {
	case "encode":
		if !parseCommand(cmdEncode, rest) {
			goto HELP
		}
		return c.encode(encodeCodec, encodeIO, false)
	case "decode":
		if !parseCommand(cmdDecode, rest) {
			goto HELP
		}
		return c.decode(decodeCodec, decodeIO, false)
	case "encodecheck":
		if !parseCommand(cmdEncodeCheck, rest) {
			goto HELP
		}
		return c.encode(encodeCheckCodec, encodeCheckIO, true)
	case "decodecheck":
		if !parseCommand(cmdDecodeCheck, rest) {
			goto HELP
		}
		return c.decode(decodeCheckCodec, decodeCheckIO, true)
	case "ident":
		if !parseCommand(cmdIdent, rest) {
			goto HELP
		}
		return c.ident(identCodec)
	case "register":
		if !parseCommand(cmdRegister, rest) || *argRegisterName == "" || *argRegisterSymbols == "" {
			goto HELP
		}
		return c.register(*argRegisterName, *argRegisterSymbols)
	case "unregister":
		if !parseCommand(cmdUnregister, rest) || *argUnregisterName == "" {
			goto HELP
		}
		return c.unregister(*argUnregisterName)
	case "alphabets":
		if !parseCommand(cmdAlphabets, rest) {
			goto HELP
		}
		return c.printAlphabets()
	case "serve":
		if !parseCommand(cmdServe, rest) || *argServePort < 0 {
			goto HELP
		}
		return c.serve(*argServePort)
	}
HELP:
	c.printUsage()
	return ErrUsage
}

func (c *Command) encode(cf *codecFlags, iof *ioFlags, check bool) error {
	codec, closeFn, err := c.codec(cf)
	if err != nil {
		return err
	}
	defer closeFn()

	b, err := c.readBinary(iof)
	if err != nil {
		return err
	}

	var text string
	if check {
		text, err = codec.EncodeCheck(b)
	} else {
		text, err = codec.Encode(b)
	}
	if err != nil {
		return err
	}
	log.Debugf("encoded %d bytes into %d symbols", len(b), len([]rune(text)))
	return c.writeLine(text)
}

func (c *Command) decode(cf *codecFlags, iof *ioFlags, check bool) error {
	codec, closeFn, err := c.codec(cf)
	if err != nil {
		return err
	}
	defer closeFn()

	text, err := c.readText(iof)
	if err != nil {
		return err
	}

	var b []byte
	if check {
		b, err = codec.DecodeCheck(text)
	} else {
		b, err = codec.Decode(text)
	}
	if err != nil {
		return err
	}
	return c.writeBinary(iof, b)
}

func (c *Command) ident(cf *codecFlags) error {
	codec, closeFn, err := c.codec(cf)
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := ident.New(codec)
	if err != nil {
		return err
	}
	return c.writeLine(id)
}

func (c *Command) register(name, symbols string) error {
	reg, err := registry.Open(c.conf.RegistryPath, nil)
	if err != nil {
		return err
	}
	defer reg.Close()

	if err = reg.Put(name, symbols); err != nil {
		return err
	}
	log.Infof("registered alphabet %s (radix %d)", name, len([]rune(symbols)))
	return nil
}

func (c *Command) unregister(name string) error {
	reg, err := registry.Open(c.conf.RegistryPath, nil)
	if err != nil {
		return err
	}
	defer reg.Close()

	return reg.Delete(name)
}

func (c *Command) printAlphabets() error {
	for _, radix := range alphabet.Radices() {
		key, _ := alphabet.Table(radix)
		if err := c.writeLine(fmt.Sprintf("%d\t%s", radix, key)); err != nil {
			return err
		}
	}

	if registry.IsNotExistDB(c.conf.RegistryPath) {
		return nil
	}
	reg, err := registry.Open(c.conf.RegistryPath, nil)
	if err != nil {
		return err
	}
	defer reg.Close()

	names, err := reg.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		symbols, err := reg.Get(name)
		if err != nil {
			return err
		}
		if err = c.writeLine(fmt.Sprintf("%s\t%s", name, symbols)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) serve(port int) error {
	conf := *c.conf
	if port != 0 {
		conf.HttpServerPort = port
	}
	reg, err := registry.Open(conf.RegistryPath, nil)
	if err != nil {
		return err
	}
	defer reg.Close()

	srv := server.NewHttpServer(&conf, reg)
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Run()
	}()

	err = graceful.Wait(errc, shutdownTimeout, srv.Shutdown)
	log.Info("http server stopped")
	return err
}
