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
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"codeberg.org/miketth/kbdconv/pkg/cldr"
	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/config"
	"codeberg.org/miketth/kbdconv/pkg/convert"
	"codeberg.org/miketth/kbdconv/pkg/klc"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore"
	jsonstore "codeberg.org/miketth/kbdconv/pkg/layoutstore/json"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore/memory"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore/sqlite"
	"codeberg.org/miketth/kbdconv/pkg/mim"
	"codeberg.org/miketth/kbdconv/pkg/xkb"
	"github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `usage: kbdconv [flags] <command> [args]

commands:
  import-cldr <file or dir>...    import CLDR keyboard files
  import-xkb [-name desc] [file(section)]...
                                  import XKB symbol sections
  export [-out dir] [-format f,g] [locale]...
                                  convert stored layouts
  list                            list stored layouts
  watch                           re-export whenever the store changes

flags:
`

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "path to the config file")
	evdevXmlPath := flag.String("evdev-xml-path", "", "path to evdev.xml, overrides the config file")
	symbolsDir := flag.String("symbols-dir", "", "XKB symbols directory, overrides the config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("missing command")
	}

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *evdevXmlPath != "" {
		cfg.XKB.RegistryPath = *evdevXmlPath
	}
	if *symbolsDir != "" {
		cfg.XKB.SymbolsDir = *symbolsDir
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{cfg: cfg, log: log, out: os.Stdout}

	command, args := flag.Arg(0), flag.Args()[1:]
	switch command {
	case "import-cldr":
		return app.importCLDR(args)
	case "import-xkb":
		return app.importXKB(args)
	case "export":
		return app.export(args)
	case "list":
		return app.list()
	case "watch":
		return app.watch(ctx)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
	out io.Writer
}

// registry wires up every codec. The evdev.xml registry is optional, a
// missing file only costs the XKB importer its display names.
func (a *app) registry() *codec.Registry {
	var xkbOpts []xkb.Option
	if a.cfg.XKB.SymbolsDir != "" {
		xkbOpts = append(xkbOpts, xkb.WithSymbolsDir(a.cfg.XKB.SymbolsDir))
	}
	if reg, err := a.xkbRegistry(); err == nil {
		xkbOpts = append(xkbOpts, xkb.WithRegistry(reg))
	} else {
		a.log.Debugw("no xkb registry", "path", a.cfg.XKB.RegistryPath, "error", err)
	}

	r := codec.NewRegistry()
	cldrCodec := cldr.New(a.log.Named(cldr.Format))
	xkbCodec := xkb.New(a.log.Named(xkb.Format), xkbOpts...)
	r.RegisterImporter(cldrCodec)
	r.RegisterExporter(cldrCodec)
	r.RegisterImporter(xkbCodec)
	r.RegisterExporter(xkbCodec)
	r.RegisterExporter(mim.New(a.log.Named(mim.Format)))
	r.RegisterExporter(klc.New(a.log.Named(klc.Format)))
	return r
}

func (a *app) xkbRegistry() (*xkb.Registry, error) {
	if a.cfg.XKB.RegistryPath == "" {
		return nil, errors.New("no registry path configured")
	}
	return xkb.ParseRegistry(a.cfg.XKB.RegistryPath)
}

// openStore opens the configured store. The returned close function
// flushes pending writes.
func (a *app) openStore() (layoutstore.Store, func() error, error) {
	switch a.cfg.Store.Type {
	case config.StoreMemory:
		return memory.NewLayoutStore(), func() error { return nil }, nil

	case config.StoreJSON:
		s, err := jsonstore.NewLayoutStore(a.cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open json store: %w", err)
		}
		return s, func() error {
			if err := s.Flush(); err != nil {
				_ = s.Close()
				return fmt.Errorf("flush json store: %w", err)
			}
			return s.Close()
		}, nil

	case config.StoreSQLite:
		s, err := sqlite.NewLayoutStore(a.cfg.Store.Path, a.log.Named("store"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, s.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store type %q", a.cfg.Store.Type)
}

// withConverter runs fn against a freshly opened store.
func (a *app) withConverter(fn func(store layoutstore.Store, c *convert.Converter) error) (err error) {
	store, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	c := convert.New(store, a.registry(), a.log.Named("convert"))
	c.Workers = a.cfg.Export.Workers
	return fn(store, c)
}

func (a *app) importCLDR(args []string) error {
	if len(args) == 0 {
		return errors.New("import-cldr needs at least one path")
	}
	return a.importPaths(cldr.Format, args)
}

func (a *app) importXKB(args []string) error {
	fs := flag.NewFlagSet("import-xkb", flag.ContinueOnError)
	name := fs.String("name", "", "import the layout with this evdev.xml description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if *name != "" {
		path, err := a.resolveXKBName(*name)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return errors.New("import-xkb needs a path or -name")
	}
	return a.importPaths(xkb.Format, paths)
}

// resolveXKBName turns a registry description such as "Norwegian (Northern
// Saami)" into "symbols/no(smi)".
func (a *app) resolveXKBName(description string) (string, error) {
	reg, err := a.xkbRegistry()
	if err != nil {
		return "", fmt.Errorf("load xkb registry: %w", err)
	}

	name, variant, ok := reg.Lookup(description)
	if !ok {
		return "", fmt.Errorf("no xkb layout named %q", description)
	}

	path := filepath.Join(a.cfg.XKB.SymbolsDir, name)
	if variant != "" {
		path += "(" + variant + ")"
	}
	return path, nil
}

func (a *app) importPaths(format string, paths []string) error {
	return a.withConverter(func(_ layoutstore.Store, c *convert.Converter) error {
		var failed bool
		for _, path := range paths {
			locales, err := c.Import(format, path)
			for _, locale := range locales {
				fmt.Fprintf(a.out, "%s\t%s\n", locale, path)
			}
			if err != nil {
				a.log.Errorw("import failed", "path", path, "error", err)
				failed = true
			}
		}
		if failed {
			return errors.New("some imports failed")
		}
		return nil
	})
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", a.cfg.Export.OutputDir, "output directory")
	formats := fs.String("format", strings.Join(a.cfg.Export.Formats, ","), "comma separated formats, all when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.withConverter(func(_ layoutstore.Store, c *convert.Converter) error {
		return a.exportOnce(c, *out, splitList(*formats), fs.Args())
	})
}

func (a *app) exportOnce(c *convert.Converter, out string, formats, locales []string) error {
	start := time.Now()
	result, err := c.Export(out, formats, locales)
	if result == nil {
		return err
	}

	for _, file := range result.Files {
		fmt.Fprintln(a.out, filepath.Join(out, file))
	}

	layoutErrs := convert.Errors(err)
	for _, le := range layoutErrs {
		a.log.Errorw("conversion failed", "locale", le.Locale, "format", le.Format, "target", le.Target, "error", le.Err)
	}
	a.log.Infow("export finished", "files", len(result.Files), "failures", len(layoutErrs), "took", time.Since(start))

	if err != nil {
		return fmt.Errorf("%d conversions failed", len(layoutErrs))
	}
	return nil
}

func (a *app) list() error {
	return a.withConverter(func(store layoutstore.Store, _ *convert.Converter) error {
		locales, err := store.Locales()
		if err != nil {
			return fmt.Errorf("list locales: %w", err)
		}

		for _, locale := range locales {
			l, err := store.Load(locale)
			if err != nil {
				a.log.Warnw("cannot load layout", "locale", locale, "error", err)
				continue
			}
			targets := make([]string, 0)
			for _, t := range l.Modes.Available() {
				targets = append(targets, string(t))
			}
			fmt.Fprintf(a.out, "%s\t%s\t%s\n", locale, l.Name(), strings.Join(targets, ","))
		}
		return nil
	})
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	_, _ = daemon.SdNotify(false, "STATUS=Watching the layout store")

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
