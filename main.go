package main

import (
	"os"

	"linkedList/config"
	"linkedList/demo"
	"linkedList/lib/logger"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type Options struct {
	Config string `short:"f" long:"config" description:"YAML configuration path"`
	Task   string `short:"t" long:"task" description:"scenario to run: task1, task2, task3 or all"`
}

func main() {
	opts := &Options{}
	if _, err := flags.NewParser(opts, flags.Default).Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if err := config.SetupConfig(opts.Config); err != nil {
		logger.L().Fatal("load config", zap.Error(err))
	}
	if opts.Task != "" {
		config.Global.Task = opts.Task
	}
	if err := config.Global.Validate(); err != nil {
		logger.L().Fatal("invalid options", zap.Error(err))
	}

	cleanup, err := logger.Setup(config.Global.Logger())
	if err != nil {
		logger.L().Fatal("setup logger", zap.Error(err))
	}
	defer cleanup()

	if err := demo.Run(os.Stdout, config.Global.Task); err != nil {
		logger.L().Error("demo", zap.Error(err))
	}
}
