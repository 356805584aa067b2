// Package main is the entry point for the stonynews CLI.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/cli"
)

// version is set at build time via ldflags.
var version = "dev"

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env.local", ".env"}

func main() {
	if err := loadEnvFiles(envFiles...); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// loadEnvFiles loads each file that exists. Missing files are skipped.
func loadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
