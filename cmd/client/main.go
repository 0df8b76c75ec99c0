package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/mhpportal/internal/client/cli"
	"github.com/dmitrijs2005/mhpportal/internal/client/config"
	"github.com/dmitrijs2005/mhpportal/internal/flagx"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

func main() {
	args := os.Args[1:]

	cfg := config.LoadConfig(args)
	log := logging.New(os.Stderr, cfg.LogLevel)

	_, rest := flagx.SplitArgs(args, config.OwnedFlags)

	root := cli.NewRootCommand(cfg, log)
	root.SetArgs(rest)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
