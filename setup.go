package main

import (
	"log"
	"os"

	"Blake3Stream/boundary"
	"Blake3Stream/config"
	"Blake3Stream/logging"
)

// configure replaces boundary.Default according to the environment.
func configure(lookup func(string) (string, bool)) error {
	cfg, err := config.FromEnv(lookup)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	boundary.Default = boundary.New(
		boundary.WithAlgorithm(cfg.Algorithm),
		boundary.WithLogger(logger),
		boundary.WithMaxHandles(cfg.MaxHandles),
	)
	logger.Debug("Configured registry", "algorithm", cfg.Algorithm.Resolve(), "maxHandles", cfg.MaxHandles)
	return nil
}

func init() {
	if err := configure(os.LookupEnv); err != nil {
		log.Fatal(err)
	}
}
