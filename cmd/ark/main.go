// Command ark archives a set of source files into dated zip snapshots and
// rotates old snapshots by a daily/weekly/monthly/yearly retention policy.
//
// One-shot (cron-friendly):
//
//	ark /path/to/xy.db /opt/backup
//	ark /path/to/xy.db,/path/to/xy.sql /opt/backup
//
// Daemon with built-in scheduling and source watching:
//
//	ark -config config.yaml
//
// DEBUG=1 enables verbose diagnostics; it never changes retention decisions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/raoulx24/ark/internal/config"
	"github.com/raoulx24/ark/internal/logging"
	"github.com/raoulx24/ark/internal/mailbox"
	"github.com/raoulx24/ark/internal/scheduler"
	"github.com/raoulx24/ark/internal/watcher"
	"github.com/raoulx24/ark/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "run as a daemon using this YAML config")
	flag.Usage = usage
	flag.Parse()

	envCfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("invalid environment: %v", err)
	}

	path := *configPath
	if path == "" {
		path = envCfg.ConfigPath
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		cancel()
	}()

	if path != "" {
		runDaemon(ctx, path, envCfg)
		return
	}

	if flag.NArg() < 2 {
		usage()
		os.Exit(1)
	}
	runOnce(ctx, flag.Arg(0), flag.Arg(1), envCfg)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ark <filePath1[,filePath2,...]> <backupDir>")
	fmt.Fprintln(os.Stderr, "       ark -config config.yaml")
	fmt.Fprintln(os.Stderr, "Example: ark /path/to/xy.db /opt/backup")
	fmt.Fprintln(os.Stderr, "Example: ark /path/to/xy.db,/path/to/xy.sql /opt/backup")
}

// runOnce performs a single create+rotate cycle and exits.
func runOnce(ctx context.Context, sourceArg, dest string, envCfg config.Env) {
	logg := logging.New(envCfg.Debug)

	w := worker.New(splitSources(sourceArg), dest, logg, nil, nil, nil)
	if _, err := w.Run(ctx); err != nil {
		logg.Error("backup failed", "error", err)
		os.Exit(1)
	}
}

// runDaemon keeps running, with cron ticks and/or source changes
// triggering backup cycles through the mailbox.
func runDaemon(ctx context.Context, path string, envCfg config.Env) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logging.New(envCfg.Debug || cfg.Logging.Level == "debug")

	// Mailbox for backup jobs
	mb := mailbox.New[worker.Job]()

	// Worker (snapshot writer + rotation)
	w := worker.New(cfg.Sources, cfg.Destination, logg, mb, nil, nil)

	// Start worker loop
	go w.Start(ctx)

	// Scheduler (cron ticks)
	sched := scheduler.New(cfg.Schedule, mb, logg)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	// Watcher (source changes)
	var watch *watcher.Watcher
	if cfg.Watch.Enabled {
		watch = watcher.New(cfg.Sources, cfg.Watch, logg, mb)
		go func() {
			if err := watch.Start(ctx); err != nil {
				log.Fatalf("failed to start watcher: %v", err)
			}
		}()
	}

	// Catch up immediately instead of waiting for the first tick.
	mb.Put(worker.Job{Trigger: "startup", Time: time.Now()})

	// Hot reload on SIGHUP
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP)

		for range sigCh {
			newCfg, err := config.Load(path)
			if err != nil {
				logg.Error("config reload failed", "error", err)
				continue
			}

			// Apply updates. Schedule changes need a restart.
			w.UpdateConfig(newCfg.Sources, newCfg.Destination)
			if watch != nil {
				watch.UpdateConfig(newCfg.Sources, newCfg.Watch)
			}

			logg.Info("config reloaded")
		}
	}()

	<-ctx.Done()
	log.Println("exit complete")
}

// splitSources parses the comma-delimited source list of the one-shot form.
func splitSources(arg string) []string {
	parts := strings.Split(arg, ",")
	sources := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sources = append(sources, p)
		}
	}
	return sources
}
