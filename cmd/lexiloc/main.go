// Command lexiloc generates localized copies of a markup document from
// phrase dictionaries.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/lexiloc"
	"github.com/ZaguanLabs/lexiloc/cache"
	"github.com/ZaguanLabs/lexiloc/config"
	"github.com/ZaguanLabs/lexiloc/dictionary"
	"github.com/ZaguanLabs/lexiloc/fetch"
	"github.com/ZaguanLabs/lexiloc/provider"
	"github.com/ZaguanLabs/lexiloc/render"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = lexiloc.Version
	commit    = lexiloc.GitCommit
	buildDate = lexiloc.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lexiloc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	configPath := fs.String("config", "lexiloc.yaml", "Job config file")
	output := fs.String("output", "", "Output directory (overrides config)")
	langFilter := fs.String("lang", "", "Comma-separated language codes to generate (default: all)")
	force := fs.Bool("force", false, "Regenerate even when the source page is unchanged")
	dryRun := fs.Bool("dry-run", false, "List indexable patterns without generating pages")
	diffFile := fs.String("diff", "", "Previous source dictionary to compare against")
	showVersion := fs.Bool("version", false, "Show version")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", lexiloc.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	log := newLogger(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.OutputDir = *output
	}

	source, err := loadDict(cfg.SourceDict)
	if err != nil {
		return err
	}
	log.Info().Str("dict", cfg.SourceDict).Int("entries", len(source)).Msg("loaded source dictionary")

	if *diffFile != "" {
		return runDiff(*diffFile, source, stdout)
	}

	if *dryRun {
		return runDryRun(source, stdout)
	}

	ctx := context.Background()

	doc, err := loadSource(ctx, cfg, log)
	if err != nil {
		return err
	}

	targets, err := selectTargets(cfg, *langFilter)
	if err != nil {
		return err
	}

	opts := []lexiloc.LocalizerOption{
		lexiloc.WithSourceLang(cfg.SourceLang),
	}
	if len(cfg.AllowedTags) > 0 {
		opts = append(opts, lexiloc.WithAllowedTags(cfg.AllowedTags))
	}
	if len(cfg.VoidTags) > 0 {
		opts = append(opts, lexiloc.WithVoidTags(cfg.VoidTags))
	}

	pageCache, closeCache, err := newCache(cfg.Cache)
	if err != nil {
		return err
	}
	if closeCache != nil {
		defer closeCache()
	}
	// -force skips the page-hash check but still reuses cached fill results.
	if pageCache != nil && !*force {
		opts = append(opts, lexiloc.WithCache(pageCache))
	}

	if cfg.Fill.Enabled {
		filler, err := newFiller(cfg.Fill, pageCache)
		if err != nil {
			return err
		}
		opts = append(opts, lexiloc.WithGapFiller(filler))
		log.Info().Str("model", cfg.Fill.Model).Msg("gap filling enabled")
	}

	localizer := lexiloc.NewLocalizer(source, opts...)
	log.Info().
		Int("patterns", localizer.Automaton().PatternCount()).
		Int("nodes", localizer.Automaton().Size()).
		Msg("automaton built")

	start := time.Now()
	pages, err := localizer.GenerateAll(ctx, doc, targets)
	if err != nil {
		return err
	}

	for lang, page := range pages {
		if err := render.WritePage(cfg.OutputDir, lang, page.Content); err != nil {
			return err
		}
		log.Info().
			Str("lang", lang).
			Int("replaced", page.Replaced).
			Int("phrases", page.Phrases).
			Msg("generated page")
	}

	title := cfg.Title
	if title == "" {
		title = render.ExtractTitle(doc)
	}
	langCodes := make([]string, len(targets))
	for i, tgt := range targets {
		langCodes[i] = tgt.Lang
	}
	if err := render.WriteIndex(cfg.OutputDir, title, langCodes); err != nil {
		return err
	}

	log.Info().
		Int("generated", len(pages)).
		Int("skipped", len(targets)-len(pages)).
		Dur("elapsed", time.Since(start)).
		Msg("done")
	return nil
}

// newLogger builds a zerolog logger writing to stderr, with a colored
// console format when stderr is a terminal.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// loadSource reads the source document from the configured file or URL.
func loadSource(ctx context.Context, cfg *config.Config, log zerolog.Logger) (string, error) {
	if cfg.SourceFile != "" {
		data, err := os.ReadFile(cfg.SourceFile) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return "", fmt.Errorf("reading source file: %w", err)
		}
		return string(data), nil
	}

	fetcher := fetch.New(fetch.DefaultTimeout, log)
	return fetcher.Get(ctx, cfg.SourceURL)
}

// loadDict loads a dictionary file, inferring the format from its extension.
func loadDict(path string) (dictionary.Dictionary, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return dictionary.LoadCSV(path)
	case ".json":
		return dictionary.LoadJSON(path)
	default:
		return nil, fmt.Errorf("dictionary %s: unsupported format (want .csv or .json)", path)
	}
}

// selectTargets loads the per-language dictionaries, optionally filtered to
// a comma-separated code list.
func selectTargets(cfg *config.Config, filter string) ([]lexiloc.Target, error) {
	wanted := map[string]bool{}
	if filter != "" {
		for _, code := range strings.Split(filter, ",") {
			wanted[lexiloc.NormalizeLocale(strings.TrimSpace(code))] = true
		}
	}

	var targets []lexiloc.Target
	for _, lang := range cfg.Languages {
		code := lexiloc.NormalizeLocale(lang.Code)
		if len(wanted) > 0 && !wanted[code] {
			continue
		}
		dict, err := loadDict(lang.Dict)
		if err != nil {
			return nil, err
		}
		targets = append(targets, lexiloc.Target{Lang: code, Dict: dict})
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no languages selected")
	}
	return targets, nil
}

// newCache builds the configured page cache backend. The returned func, if
// non-nil, releases backend resources.
func newCache(cfg config.Cache) (lexiloc.PageCache, func(), error) {
	switch cfg.Backend {
	case "none":
		return nil, nil, nil
	case "memory":
		return cache.NewInMemoryCache(cfg.TTL), nil, nil
	case "sqlite":
		c, err := cache.NewSQLiteCache(cfg.Path, cfg.TTL)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	case "redis":
		c, err := cache.NewRedisCache(cache.RedisConfig{URL: cfg.RedisURL, TTL: cfg.TTL})
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// newFiller builds the OpenAI gap filler wrapped with retry, rate limiting,
// and, when a cache backend is configured, per-phrase result caching so
// repeated runs never re-translate a phrase.
func newFiller(cfg config.Fill, pageCache lexiloc.PageCache) (lexiloc.GapFiller, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("gap filling requires OPENAI_API_KEY")
	}

	filler := provider.NewOpenAIFiller(provider.OpenAIConfig{
		APIKey: key,
		Model:  cfg.Model,
	})

	limited := lexiloc.NewRateLimitedFiller(filler, lexiloc.RateLimitConfig{
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
	retryable := lexiloc.NewRetryableFiller(limited, lexiloc.DefaultRetryConfig())

	if pageCache == nil {
		return retryable, nil
	}
	return lexiloc.NewCachedFiller(retryable, pageCache), nil
}

// runDiff compares the current source dictionary with a previous snapshot
// and reports which phrases would need re-translation.
func runDiff(oldPath string, current dictionary.Dictionary, stdout io.Writer) error {
	old, err := loadDict(oldPath)
	if err != nil {
		return err
	}

	diff := lexiloc.DiffDictionaries(old, current)
	stats := diff.Stats()

	fmt.Fprintf(stdout, "Diff against %s\n\n", filepath.Base(oldPath))
	fmt.Fprintf(stdout, "Summary:\n")
	fmt.Fprintf(stdout, "  Added:   %d\n", stats.Added)
	fmt.Fprintf(stdout, "  Removed: %d\n", stats.Removed)
	fmt.Fprintf(stdout, "  Changed: %d\n", stats.Changed)
	fmt.Fprintf(stdout, "\n")

	if !diff.HasChanges() {
		fmt.Fprintf(stdout, "No changes detected. All translations are up to date.\n")
		return nil
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Changed)

	if len(diff.Added) > 0 {
		fmt.Fprintf(stdout, "Added:\n")
		for _, id := range diff.Added {
			fmt.Fprintf(stdout, "  + %s %q\n", id, truncate(current[id], 50))
		}
		fmt.Fprintf(stdout, "\n")
	}

	if len(diff.Changed) > 0 {
		fmt.Fprintf(stdout, "Changed:\n")
		for _, id := range diff.Changed {
			fmt.Fprintf(stdout, "  ~ %s %q -> %q\n", id, truncate(old[id], 30), truncate(current[id], 30))
		}
		fmt.Fprintf(stdout, "\n")
	}

	if len(diff.Removed) > 0 {
		fmt.Fprintf(stdout, "Removed:\n")
		for _, id := range diff.Removed {
			fmt.Fprintf(stdout, "  - %s %q\n", id, truncate(old[id], 50))
		}
		fmt.Fprintf(stdout, "\n")
	}

	fmt.Fprintf(stdout, "Needs translation: %d phrases\n", stats.Added+stats.Changed)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// runDryRun lists the patterns that would be indexed.
func runDryRun(source dictionary.Dictionary, stdout io.Writer) error {
	patterns := lexiloc.FilterPatterns(source.Phrases())
	fmt.Fprintf(stdout, "%d of %d phrases are indexable:\n\n", len(patterns), len(source))
	for i, p := range patterns {
		fmt.Fprintf(stdout, "%4d. %q\n", i+1, p)
	}
	return nil
}
