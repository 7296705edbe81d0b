package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/kofiasare/aliscout"
	"github.com/kofiasare/aliscout/collect"
	"github.com/kofiasare/aliscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     *aliscout.Config
	DB         *sqlite.DB
	Categories aliscout.CategoryService
	Products   aliscout.ProductService
	Snapshots  aliscout.ListingWriter
	Collector  *collect.Collector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Config file path" type:"path"`

	Search SearchCmd `cmd:"" help:"Collect listings for a keyword and load them into the store"`
	Query  QueryCmd  `cmd:"" help:"List stored listings for a keyword"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword string `arg:"" help:"Search keyword"`
	Size    int    `short:"s" default:"100" help:"Target sample size"`
	Out     string `short:"o" help:"Snapshot output directory (overrides config)" type:"path"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Keyword string `arg:"" help:"Search keyword"`
}
