package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"newsdigest/pkg/config"
	"newsdigest/pkg/content"
	"newsdigest/pkg/digest"
	"newsdigest/pkg/domain"
	"newsdigest/pkg/llm"
	"newsdigest/pkg/pipeline"
	"newsdigest/pkg/publisher"
	"newsdigest/pkg/repository"
	"newsdigest/pkg/scraper"
	"newsdigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	DryRun  bool   `long:"dry-run" description:"scrape and report without writing to the store"`
	Service bool   `long:"service" env:"SERVICE" description:"run the HTTP trigger server after boot"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting newsdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] newsdigest failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the store, pipelines and server from configuration and executes
// the boot sequence; in service mode it keeps the HTTP server running after
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config %s: %w", opts.Config, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create repositories: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	ingester := pipeline.NewIngest(cfg.Source.Name, makeScraper(cfg), repos.News, content.NewTimeResolver(loc))

	assembler := &digest.MarkdownAssembler{Header: cfg.Digest.Header, Footer: cfg.Digest.Footer}
	digestPublisher := pipeline.NewPublish(&publishStore{repos: repos},
		llm.NewGenerator(cfg.GetLLMConfig()), assembler, publisher.NewTelegram(cfg.Telegram),
		cfg.LLM.Prompt, cfg.Digest.Blocked)

	boot := pipeline.NewBoot(
		pipeline.Step{Name: "liveness", Run: func(ctx context.Context) (interface{}, error) {
			return "ok", repos.Ping(ctx)
		}},
		pipeline.Step{Name: "ingest", Run: func(ctx context.Context) (interface{}, error) {
			return ingester.Run(ctx, opts.DryRun)
		}},
		pipeline.Step{Name: "publish digest", Run: func(ctx context.Context) (interface{}, error) {
			if opts.DryRun {
				return "skipped, dry run", nil
			}
			return digestPublisher.Run(ctx)
		}},
	)

	bootResult := boot.Run(ctx)
	if bootResult.Failed() && !opts.Service {
		return fmt.Errorf("boot sequence failed")
	}

	if !opts.Service {
		return nil
	}

	listen, timeout := cfg.GetServerConfig()
	srv := server.New(server.Config{
		Listen:  listen,
		Timeout: timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, ingester, digestPublisher, repos.Digest)

	return srv.Run(ctx)
}

// makeScraper picks the feed adapter when feed_url is set, the HTML scraper otherwise
func makeScraper(cfg *config.Config) pipeline.Scraper {
	if cfg.Source.FeedURL != "" {
		return scraper.NewRSSScraper(cfg.Source)
	}
	return scraper.NewHTMLScraper(cfg.Source)
}

// publishStore adapts the repositories to the publishing pipeline's store view
type publishStore struct {
	repos *repository.Repositories
}

func (s *publishStore) UnprocessedItems(ctx context.Context) ([]domain.SelectedItem, error) {
	return s.repos.News.UnprocessedItems(ctx)
}

func (s *publishStore) MarkProcessed(ctx context.Context, ids []int64) error {
	return s.repos.News.MarkProcessed(ctx, ids)
}

func (s *publishStore) CreateWithProcessedItems(ctx context.Context, d *domain.Digest) error {
	return s.repos.Digest.CreateWithProcessedItems(ctx, d)
}

func (s *publishStore) MarkPublished(ctx context.Context, id int64, text, externalID string) error {
	return s.repos.Digest.MarkPublished(ctx, id, text, externalID)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
