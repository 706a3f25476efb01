package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"v1-esp/internal/config"
	"v1-esp/internal/web"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("esp-gen: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("esp-gen", flag.ContinueOnError)

	var (
		configPath string
		listen     string
		format     string
		alert      config.AlertConfig
		mainVol    int
	)
	fs.StringVar(&configPath, "config", "", "Path to YAML alert scenario (overrides alert flags)")
	fs.StringVar(&listen, "listen", "", "Serve the HTTP API on this address instead of printing packets")
	fs.StringVar(&format, "format", config.DefaultFormat, "Output format: c, hex or raw")
	fs.StringVar(&alert.Bogey, "bogey", "", "Bogey counter digit 0-9 (blank for none)")
	fs.StringVar(&alert.Band, "band", "", "Band: Laser, Ka Band, K Band, X Band")
	fs.StringVar(&alert.Direction, "dir", "", "Arrow: Front Arrow, Side Arrow, Rear Arrow")
	fs.BoolVar(&alert.Blink, "blink", false, "Blink the band, arrow and bogey indicators")
	fs.IntVar(&alert.Strength, "strength", 0, "Signal strength bars 0-8")
	fs.IntVar(&mainVol, "main-vol", config.DefaultMainVolume, "Main volume 0-15")
	fs.IntVar(&alert.MuteVolume, "mute-vol", 0, "Mute volume 0-15")
	if err := fs.Parse(args); err != nil {
		return err
	}
	alert.MainVolume = &mainVol

	formatSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "format" {
			formatSet = true
		}
	})

	if listen != "" {
		log.Printf("esp-gen listening on %s", listen)
		err := web.Serve(ctx, listen, web.NewStatus())
		if errors.Is(err, context.Canceled) {
			log.Printf("esp-gen stopping")
			return nil
		}
		return err
	}

	alerts := []config.AlertConfig{alert}
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		alerts = cfg.Alerts
		if !formatSet {
			format = cfg.Output.Format
		}
	}
	if !config.ValidFormat(format) {
		return fmt.Errorf("unknown format %q (want c, hex or raw)", format)
	}

	packets, err := buildPackets(alerts)
	if err != nil {
		return err
	}
	return writePackets(stdout, format, packets)
}
