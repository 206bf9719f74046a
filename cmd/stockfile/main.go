package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"

	"github.com/rl1809/stockfile/internal/adapter/notify"
	"github.com/rl1809/stockfile/internal/adapter/storage"
	"github.com/rl1809/stockfile/internal/config"
	"github.com/rl1809/stockfile/internal/core/domain"
	"github.com/rl1809/stockfile/internal/core/service"
)

const appName = "stockfile"

var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run parses global flags, resolves config and dispatches the command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		configPath string
		filePath   string
		showVer    bool
	)
	fs.StringVar(&configPath, "config", "", "path to config TOML")
	fs.StringVar(&filePath, "file", "", "path to inventory JSON file")
	fs.BoolVar(&showVer, "version", false, "show version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showVer {
		_, _ = fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return nil
	}

	if configPath == "" {
		configPath = strings.TrimSpace(os.Getenv("STOCKFILE_CONFIG"))
	}
	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}
	if strings.TrimSpace(filePath) != "" {
		cfg.Storage.Path = filePath
	}

	logger, err := newLogger(stderr, cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	command := "demo"
	rest := fs.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	logger.Debug("configuration loaded", "config_path", configPath, "storage_path", cfg.Storage.Path, "low_threshold", cfg.Report.LowThreshold)

	repo := storage.NewJSONFileAdapter(cfg.Storage.Path)
	svc := service.NewInventoryService(repo, notify.NewLogNotifier(logger), nil)
	cmd := commandEnv{
		ctx:    ctx,
		svc:    svc,
		cfg:    cfg,
		stdout: stdout,
	}

	logger.Info("command flow start", "command", command)
	switch command {
	case "demo":
		err = cmd.demo(rest)
	case "add":
		err = cmd.add(rest)
	case "remove":
		err = cmd.remove(rest)
	case "get":
		err = cmd.get(rest)
	case "low":
		err = cmd.low(rest)
	case "list":
		err = cmd.list(rest)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	if err != nil {
		logger.Error("command flow failed", "command", command, "err", err)
		return fmt.Errorf("run %s command: %w", command, err)
	}
	logger.Info("command flow complete", "command", command)
	return nil
}

func newLogger(w io.Writer, cfg config.LoggingConfig) (*charmLog.Logger, error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.TextFormatter,
	}), nil
}

type commandEnv struct {
	ctx    context.Context
	svc    *service.InventoryService
	cfg    config.Config
	stdout io.Writer
}

// demo runs the scripted add/remove/query/save/reload sequence.
func (c commandEnv) demo(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected demo arguments: %v", args)
	}

	store := domain.NewStore()
	store = c.svc.Add(store, "apple", 10).Store
	store = c.svc.Add(store, "banana", 2).Store
	store = c.svc.Add(store, "pear", 5).Store

	store = c.svc.Remove(store, "apple", 3).Store
	store = c.svc.Remove(store, "orange", 1).Store

	_, _ = fmt.Fprintln(c.stdout, "Apple stock:", c.svc.Quantity(store, "apple"))
	_, _ = fmt.Fprintln(c.stdout, "Low items:", c.svc.LowItems(store, c.cfg.Report.LowThreshold))

	c.svc.Save(c.ctx, store)
	store = c.svc.Load(c.ctx).Store

	if err := c.svc.Report(c.stdout, store); err != nil {
		return err
	}
	for _, line := range c.svc.Log().Lines() {
		_, _ = fmt.Fprintln(c.stdout, line)
	}
	return nil
}

func (c commandEnv) add(args []string) error {
	item, quantity, ok, err := c.itemQuantityArgs("add", args)
	if err != nil || !ok {
		return err
	}
	store := c.svc.Load(c.ctx).Store
	if res := c.svc.Add(store, item, quantity); res.OK() {
		c.svc.Save(c.ctx, res.Store)
	}
	return nil
}

func (c commandEnv) remove(args []string) error {
	item, quantity, ok, err := c.itemQuantityArgs("remove", args)
	if err != nil || !ok {
		return err
	}
	store := c.svc.Load(c.ctx).Store
	if res := c.svc.Remove(store, item, quantity); res.OK() {
		c.svc.Save(c.ctx, res.Store)
	}
	return nil
}

func (c commandEnv) get(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <item>")
	}
	store := c.svc.Load(c.ctx).Store
	_, _ = fmt.Fprintln(c.stdout, c.svc.Quantity(store, args[0]))
	return nil
}

func (c commandEnv) low(args []string) error {
	fs := flag.NewFlagSet(appName+" low", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	threshold := fs.Int("threshold", c.cfg.Report.LowThreshold, "report items with quantity below this value")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse low flags: %w", err)
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected low arguments: %v", fs.Args())
	}
	store := c.svc.Load(c.ctx).Store
	for _, item := range c.svc.LowItems(store, *threshold) {
		_, _ = fmt.Fprintln(c.stdout, item)
	}
	return nil
}

func (c commandEnv) list(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected list arguments: %v", args)
	}
	store := c.svc.Load(c.ctx).Store
	return c.svc.Report(c.stdout, store)
}

// itemQuantityArgs parses "<item> <qty>". An unparseable quantity is
// reported as a diagnostic and leaves ok false without an error.
func (c commandEnv) itemQuantityArgs(command string, args []string) (item string, quantity int, ok bool, err error) {
	if len(args) != 2 {
		return "", 0, false, fmt.Errorf("usage: %s <item> <quantity>", command)
	}
	quantity, ok = c.svc.ParseQuantity(args[1])
	return args[0], quantity, ok, nil
}
