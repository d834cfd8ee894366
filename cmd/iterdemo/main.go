package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/satori/go.uuid"
	"github.com/spf13/pflag"

	"go.llib.dev/iterable/internal/config"
	"go.llib.dev/iterable/internal/demo"
	"go.llib.dev/iterable/pkg/iterlog"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("iterdemo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "path to a YAML config file")
	envFile := fs.String("env-file", "", "path to a .env file")
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(config.LoaderConfig{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
		Flags:      fs,
	})
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := iterlog.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	logger = logger.With().Str("run_id", uuid.NewV4().String()).Logger()
	logger.Info().Int("size", cfg.Size).Msg("running pipelines")
	return demo.Print(stdout, demo.Run(cfg.Size, logger))
}
