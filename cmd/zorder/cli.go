package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/zorder/logger"
	"github.com/amp-labs/zorder/scene"
	"github.com/amp-labs/zorder/sorted"
)

// CLI is the root command structure.
type CLI struct {
	LogLevel  string `name:"log-level" help:"log level (debug, info, warn, error)" default:"warn" env:"ZORDER_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"log format (text, json)" default:"text" enum:"text,json" env:"ZORDER_LOG_FORMAT"`

	Sort   SortCmd   `cmd:"" help:"Insert integers into a sorted array and print it"`
	Render RenderCmd `cmd:"" help:"Load a scene document and print its render order"`
}

func (c *CLI) configureLogging(out io.Writer) error {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem:   "zorder",
		JSON:        c.LogFormat == "json",
		MinLevel:    level,
		LegacyLevel: slog.LevelInfo,
		Output:      out,
	})

	return nil
}

// SortCmd inserts values one by one, deletes the requested ones and prints the
// resulting array.
type SortCmd struct {
	Values []int `arg:"" help:"values to insert, in order"`
	Delete []int `help:"values to delete after inserting (repeatable or comma separated)"`
}

func (s *SortCmd) Run(out io.Writer) error {
	ctx := logger.WithSubsystem(context.Background(), "sort")
	arr := sorted.New(func(v int) int { return v }, sorted.WithCapacity(len(s.Values)))

	arr.InsertAll(s.Values...)

	for _, v := range s.Delete {
		if !arr.Delete(v) {
			logger.Get(ctx).Warn("value not present", "value", v)
		}
	}

	logger.Get(ctx).Debug("sorted values", "inserted", len(s.Values), "size", arr.Size())

	_, err := fmt.Fprintln(out, arr)

	return err
}

// RenderCmd prints the visible layers of a scene document bottom to top.
type RenderCmd struct {
	Path  string `arg:"" name:"scene" help:"scene document (YAML)" type:"existingfile"`
	Names bool   `help:"print all layer names in natural order instead"`
}

func (r *RenderCmd) Run(out io.Writer) error {
	ctx := logger.WithSubsystem(context.Background(), "render")

	stack, err := scene.LoadFile(ctx, r.Path)
	if err != nil {
		return err
	}

	if r.Names {
		for _, name := range stack.Names() {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}

		return nil
	}

	for layer := range stack.RenderOrder() {
		if _, err := fmt.Fprintln(out, layer); err != nil {
			return err
		}
	}

	return nil
}
