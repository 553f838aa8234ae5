// Command stringsctl checks, queries and publishes the UI string tables.
//
//	stringsctl check [-dir path] [-allow-missing]
//	stringsctl lookup <locale> <key>
//	stringsctl locales
//	stringsctl sync
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"dmstrings/internal/application"
	"dmstrings/internal/bootstrap"
	"dmstrings/internal/config"
	"dmstrings/internal/domain"
	"dmstrings/internal/domain/entities"
	"dmstrings/internal/infrastructure/locales"
	"dmstrings/pkg/logger"
)

const usage = `usage: stringsctl <command> [arguments]

commands:
  check [-dir path] [-allow-missing]  verify every locale against root
  lookup <locale> <key>               print the text of key in locale
  locales                             list available locales
  sync                                copy the resource files into PostgreSQL
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logger.Must(cfg.Env)
	defer log.Sync() //nolint:errcheck

	switch args[0] {
	case "check":
		fs := flag.NewFlagSet("check", flag.ContinueOnError)
		fs.SetOutput(stderr)
		dir := fs.String("dir", cfg.LocalesDir, "resource directory (default: embedded resources)")
		allowMissing := fs.Bool("allow-missing", false, "report untranslated keys without failing")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		src := locales.Embedded()
		if *dir != "" {
			src = locales.NewSource(os.DirFS(*dir))
		}
		return check(ctx, src, *allowMissing, stdout)

	case "lookup":
		if len(args) != 3 {
			fmt.Fprint(stderr, usage)
			return 2
		}
		c, err := bootstrap.BuildCatalog(ctx, cfg, log)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer c.Close()
		return lookup(c.Catalog, args[1], args[2], stdout, stderr)

	case "locales":
		c, err := bootstrap.BuildCatalog(ctx, cfg, log)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer c.Close()
		for _, id := range c.AvailableLocales() {
			fmt.Fprintln(stdout, id)
		}
		return 0

	case "sync":
		if err := syncLocales(ctx, cfg, log); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func lookup(c *application.Catalog, locale, key string, stdout, stderr io.Writer) int {
	res, err := c.Resolve(locale, key)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, res.Value)
	if res.FellBack() {
		fmt.Fprintf(stderr, "(from %s)\n", res.Locale)
	}
	return 0
}

// check loads every locale of src and reports untranslated keys, keys root
// does not know and validation patterns that do not compile. It returns the
// process exit code.
func check(ctx context.Context, src *locales.Source, allowMissing bool, out io.Writer) int {
	b := application.NewBuilder(nil)
	if err := src.Register(b, nil); err != nil {
		fmt.Fprintln(out, "FAIL", err)
		return 1
	}
	c, err := b.Build()
	if err != nil {
		fmt.Fprintln(out, "FAIL", err)
		return 1
	}

	failed := false
	if err := c.Preload(ctx); err != nil {
		fmt.Fprintln(out, "FAIL", err)
		failed = true
	}

	root, err := c.Table(ctx, entities.RootLocale)
	if err != nil {
		fmt.Fprintln(out, "FAIL", err)
		return 1
	}

	for _, id := range c.AvailableLocales() {
		cov, err := c.Coverage(id)
		if err != nil {
			continue // reported by Preload
		}
		fmt.Fprintf(out, "%s: %d/%d translated\n", id, cov.Translated, cov.Total)
		for _, k := range cov.Unknown {
			fmt.Fprintf(out, "  unknown key %s\n", k)
			failed = true
		}
		for _, k := range cov.Missing {
			fmt.Fprintf(out, "  missing %s\n", k)
		}
		if !cov.Complete() && !allowMissing {
			failed = true
		}
		for _, k := range root.Keys() {
			if entities.KindOf(k) != entities.KindPattern {
				continue
			}
			if _, err := c.Pattern(id, k); err != nil && !errors.Is(err, domain.ErrMissingKey) {
				fmt.Fprintf(out, "  bad pattern %s: %v\n", k, err)
				failed = true
			}
		}
	}

	if failed {
		fmt.Fprintln(out, "FAIL")
		return 1
	}
	fmt.Fprintln(out, "ok")
	return 0
}

// syncLocales replaces the PostgreSQL content of every locale with the
// content of the resource files.
func syncLocales(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.DatabaseURL == "" {
		return errors.New("sync: DATABASE_URL is required")
	}
	src := bootstrap.FileSource(cfg)
	b := application.NewBuilder(log)
	if err := src.Register(b, nil); err != nil {
		return err
	}
	c, err := b.Build()
	if err != nil {
		return err
	}
	if err := c.Preload(ctx); err != nil {
		return err
	}

	repo, closeFn, err := bootstrap.OpenRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	for _, id := range c.AvailableLocales() {
		t, err := c.Table(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.Replace(ctx, id, t.Entries()); err != nil {
			return err
		}
	}
	return nil
}
