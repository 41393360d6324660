// Package server exposes the codec, the alphabet registry and compact
// identifiers over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/treeforest/basen"
	"github.com/treeforest/basen/alphabet"
	"github.com/treeforest/basen/config"
	"github.com/treeforest/basen/ident"
	"github.com/treeforest/basen/registry"
	log "github.com/treeforest/logger"
)

var errNoRegistry = errors.New("alphabet registry disabled")

type HttpServer struct {
	conf *config.Config
	reg  *registry.Registry
	srv  *http.Server
}

// NewHttpServer serves on conf.HttpServerPort. reg may be nil, which
// disables the /alphabets routes and name lookups.
func NewHttpServer(conf *config.Config, reg *registry.Registry) *HttpServer {
	s := &HttpServer{conf: conf, reg: reg}
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.HttpServerPort),
		Handler: s.Handler(),
	}
	return s
}

func (s *HttpServer) Handler() http.Handler {
	r := gin.Default()

	r.POST("/encode", s.handleEncode)
	r.POST("/decode", s.handleDecode)
	r.GET("/ident", s.handleIdent)

	r.GET("/alphabets", s.handleListAlphabets)
	r.GET("/alphabets/:name", s.handleGetAlphabet)
	r.PUT("/alphabets/:name", s.handlePutAlphabet)
	r.DELETE("/alphabets/:name", s.handleDeleteAlphabet)

	return r
}

// Run blocks until the server stops. A Shutdown is not an error.
func (s *HttpServer) Run() error {
	log.Infof("http server listening on %s", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrap(err, "http server run failed")
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// codecRequest 选择编解码器的公共参数，未填写的项使用配置默认值
type codecRequest struct {
	Radix    int    `json:"radix" form:"radix"`
	Alphabet string `json:"alphabet" form:"alphabet"`
	Name     string `json:"name" form:"name"`
	Strategy string `json:"strategy" form:"strategy"`
	Hash     string `json:"hash" form:"hash"`
}

func (s *HttpServer) codec(req codecRequest) (*basen.Codec, error) {
	conf := *s.conf
	if req.Radix != 0 || req.Alphabet != "" || req.Name != "" {
		conf.Radix, conf.Alphabet, conf.Name = req.Radix, req.Alphabet, req.Name
	}
	if req.Strategy != "" {
		conf.Strategy = req.Strategy
	}
	if req.Hash != "" {
		conf.Hash = req.Hash
	}
	if s.reg == nil {
		return conf.Codec(nil)
	}
	return conf.Codec(s.reg)
}

func (s *HttpServer) handleEncode(c *gin.Context) {
	type Request struct {
		codecRequest
		Data  []byte `json:"data"`
		Check bool   `json:"check"`
	}
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	codec, err := s.codec(req.codecRequest)
	if err != nil {
		s.fail(c, err)
		return
	}

	var text string
	if req.Check {
		text, err = codec.EncodeCheck(req.Data)
	} else {
		text, err = codec.Encode(req.Data)
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *HttpServer) handleDecode(c *gin.Context) {
	type Request struct {
		codecRequest
		Text  string `json:"text"`
		Check bool   `json:"check"`
	}
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	codec, err := s.codec(req.codecRequest)
	if err != nil {
		s.fail(c, err)
		return
	}

	var data []byte
	if req.Check {
		data, err = codec.DecodeCheck(req.Text)
	} else {
		data, err = codec.Decode(req.Text)
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (s *HttpServer) handleIdent(c *gin.Context) {
	req := codecRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request query error"})
		return
	}

	codec, err := s.codec(req)
	if err != nil {
		s.fail(c, err)
		return
	}

	id, u, err := ident.NewUUID(codec)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "uuid": u.String()})
}

// handleListAlphabets 预定义字母表不依赖注册表，注册表关闭时只返回预定义部分
func (s *HttpServer) handleListAlphabets(c *gin.Context) {
	radices := make(map[string]string)
	for _, radix := range alphabet.Radices() {
		key, _ := alphabet.Table(radix)
		radices[strconv.Itoa(radix)] = key
	}
	resp := gin.H{"predefined": radices}

	if s.reg != nil {
		names, err := s.reg.Names()
		if err != nil {
			s.fail(c, err)
			return
		}
		resp["names"] = names
	}

	c.JSON(http.StatusOK, resp)
}

func (s *HttpServer) handleGetAlphabet(c *gin.Context) {
	if !s.checkRegistry(c) {
		return
	}
	name := c.Param("name")
	abc, err := s.reg.Alphabet(name)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "symbols": abc.String(), "radix": abc.Radix()})
}

func (s *HttpServer) handlePutAlphabet(c *gin.Context) {
	if !s.checkRegistry(c) {
		return
	}
	type Request struct {
		Symbols string `json:"symbols" binding:"required"`
	}
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	name := c.Param("name")
	if err := s.reg.Put(name, req.Symbols); err != nil {
		s.fail(c, err)
		return
	}
	log.Infof("registered alphabet %s", name)

	c.JSON(http.StatusOK, gin.H{"name": name, "symbols": req.Symbols})
}

func (s *HttpServer) handleDeleteAlphabet(c *gin.Context) {
	if !s.checkRegistry(c) {
		return
	}
	name := c.Param("name")
	if err := s.reg.Delete(name); err != nil {
		s.fail(c, err)
		return
	}
	log.Infof("deleted alphabet %s", name)

	c.Status(http.StatusNoContent)
}

func (s *HttpServer) checkRegistry(c *gin.Context) bool {
	if s.reg == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNoRegistry.Error()})
		return false
	}
	return true
}

func (s *HttpServer) fail(c *gin.Context, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		log.Warnf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	var (
		unknown *alphabet.UnknownRadixError
		digit   *alphabet.InvalidDigitError
	)
	switch {
	case errors.Is(err, registry.ErrNotFound), errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.Is(err, basen.ErrBufferOverflow), errors.As(err, &digit):
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
