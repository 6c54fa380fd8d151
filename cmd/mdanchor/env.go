package main

import (
	"io"
	"os"
	"time"

	mdanchor "github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, configuration, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	AssetLoader mdanchor.AssetLoader // nil = embedded assets
	Config      *config.Config       // Loaded once, shared across workers
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		Config:  config.DefaultConfig(),
	}
}
