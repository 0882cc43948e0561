// uvtool computes texture coordinates for brush faces exported by a map compiler.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/brushuv/internal/config"
	"github.com/Faultbox/brushuv/internal/logger"
	"github.com/Faultbox/brushuv/pkg/formats"
	"github.com/Faultbox/brushuv/pkg/texture"
	"github.com/Faultbox/brushuv/pkg/uv"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "project", "p":
		cmdProject(args)
	case "info":
		cmdInfo(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`uvtool - brush face UV generator

Usage:
  uvtool <command> [options]

Commands:
  project [options] [faces.yaml]   Compute face UVs and write a UV table
  info [options] <faces.yaml>      Show face set information
  config [path]                    Write the default config file

Project options:
  --config <path>   Config file (.yaml or .toml)
  -o <path>         Output file (default stdout)
  --workers <n>     Faces processed in parallel
  --lenient         Skip faces with degenerate planes instead of failing
  --debug           Enable debug logging

Examples:
  uvtool project e1m1.faces.yaml > e1m1.uv.yaml
  uvtool project -o e1m1.uv.yaml --lenient e1m1.faces.yaml
  uvtool info e1m1.faces.yaml`)
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	var flags config.Flags
	flags.Register(fs)
	fs.Parse(args)

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("config loaded",
		zap.Int("workers", cfg.UV.Workers),
		zap.Bool("strict", cfg.UV.Strict),
		zap.Stringer("default_texture_size", texture.Size{Width: cfg.UV.DefaultTextureWidth, Height: cfg.UV.DefaultTextureHeight}),
	)

	path := cfg.Input.FaceSet
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: uvtool project [options] <faces.yaml>")
		os.Exit(1)
	}

	set, err := formats.LoadFaceSet(path)
	if err != nil {
		logger.Error("failed to load face set", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}

	logger.Debug("face set loaded", zap.String("path", path), zap.Int("faces", len(set.Faces)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	uvs, err := uv.Build(ctx, set.Input(), cfg.UV.BuildOptions(logger.Named("uv"))...)
	if err != nil {
		if uvs == nil {
			logger.Error("UV generation failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Warn("some faces were skipped", zap.Int("skipped", len(set.Faces)-len(uvs)))
	}
	logger.Info("generated UVs",
		zap.String("face_set", path),
		zap.Int("faces", len(uvs)),
		zap.Duration("elapsed", time.Since(start)),
	)

	data, err := formats.MarshalUVs(uvs)
	if err != nil {
		logger.Error("failed to encode UVs", zap.Error(err))
		os.Exit(1)
	}

	if cfg.Output.Path == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(cfg.Output.Path, data, 0644); err != nil {
		logger.Error("failed to write UVs", zap.String("path", cfg.Output.Path), zap.Error(err))
		os.Exit(1)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	var flags config.Flags
	flags.Register(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvtool info [--config path] <faces.yaml>")
		os.Exit(1)
	}

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	set, err := formats.LoadFaceSet(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := set.Stats()
	fmt.Printf("Face set: %s\n", fs.Arg(0))
	fmt.Printf("Faces:    %d (%d standard, %d valve)\n", s.Faces, s.StandardFaces, s.ValveFaces)
	fmt.Printf("Vertices: %d\n", s.Vertices)
	fmt.Printf("Textures: %d\n", s.Textures)

	in := set.Input()
	resolver := texture.NewResolver(in.Textures, in.TextureSizes, cfg.UV.ResolverOptions()...)
	unknown := set.UnknownTextures(resolver)
	if len(unknown) > 0 {
		fmt.Println()
		fmt.Printf("Textures without size (UVs use %s):\n", resolver.DefaultSize())
		for _, t := range unknown {
			note := ""
			if resolver.IsPlaceholder(texture.ID(t.ID)) {
				note = " (placeholder)"
			}
			fmt.Printf("  %s%s\n", t.Name, note)
		}
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Default()
	if fs.NArg() < 1 {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	if err := cfg.SaveTo(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", fs.Arg(0))
}
