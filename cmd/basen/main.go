package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/treeforest/basen/config"
	"github.com/treeforest/basen/internal/cli"
	log "github.com/treeforest/logger"
)

var confPath = flag.String("conf", "", "config path")

func main() {
	flag.Parse()

	conf := config.DefaultConfig()
	if *confPath != "" {
		var err error
		conf, err = config.Load(*confPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}

	err := cli.NewCommand(conf, os.Stdin, os.Stdout).Run(flag.Args())
	if errors.Is(err, cli.ErrUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
