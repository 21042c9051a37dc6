// Command weardict performs a single dictionary lookup or translation and
// prints the result to the terminal.
//
//	weardict dic hello
//	weardict translate --json 早上好
//
// Exit codes: 0 = success, 1 = request failed, 2 = usage error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
	"github.com/yos-x/weardict/internal/app"
	"github.com/yos-x/weardict/internal/config"
	"github.com/yos-x/weardict/internal/domain"
)

type lookupService interface {
	LookupAsync(ctx context.Context, text string) (<-chan domain.Outcome[domain.DictionaryEntry], error)
	TranslateAsync(ctx context.Context, text string) (<-chan domain.Outcome[domain.TranslationResult], error)
}

type options struct {
	Config  string        `short:"c" long:"config" description:"Path to a YAML config file" value-name:"FILE"`
	Timeout time.Duration `short:"t" long:"timeout" description:"Upstream request timeout, overrides the config"`
	JSON    bool          `long:"json" description:"Print the result as JSON"`
}

type textArgs struct {
	Text []string `positional-arg-name:"text" required:"1"`
}

type dicCommand struct {
	Args textArgs `positional-args:"yes" required:"yes"`
	cli  *cli
}

func (c *dicCommand) Execute([]string) error {
	return c.cli.dictionary(strings.Join(c.Args.Text, " "))
}

type translateCommand struct {
	Args textArgs `positional-args:"yes" required:"yes"`
	cli  *cli
}

func (c *translateCommand) Execute([]string) error {
	return c.cli.translate(strings.Join(c.Args.Text, " "))
}

// requestError marks a failed lookup, as opposed to a usage problem.
type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

type cli struct {
	ctx        context.Context
	opts       options
	stdout     io.Writer
	stderr     io.Writer
	newService func(cfg *config.Config, logger *slog.Logger) lookupService
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, defaultService)
	stop()
	os.Exit(code)
}

func defaultService(cfg *config.Config, logger *slog.Logger) lookupService {
	return app.NewLookupService(cfg, logger, nil)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, newService func(*config.Config, *slog.Logger) lookupService) int {
	c := &cli{ctx: ctx, stdout: stdout, stderr: stderr, newService: newService}

	parser := flags.NewParser(&c.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "weardict"
	if _, err := parser.AddCommand("dic", "Look up a word or phrase",
		"Query the Youdao dictionary and print related terms, example sentences and encyclopedia summaries.",
		&dicCommand{cli: c}); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if _, err := parser.AddCommand("translate", "Translate text",
		"Translate text between English and Chinese with fanyi.so.com.",
		&translateCommand{cli: c}); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	_, err := parser.ParseArgs(args)
	if err == nil {
		return 0
	}
	if flags.WroteHelp(err) {
		fmt.Fprintln(stdout, err)
		return 0
	}

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		fmt.Fprintf(stderr, "请求失败: %v\n", reqErr.err)
		return 1
	}
	fmt.Fprintf(stderr, "weardict: %v\n", err)
	return 2
}

func (c *cli) service() (lookupService, error) {
	load := config.Load
	if c.opts.Config != "" {
		load = func() (*config.Config, error) { return config.LoadFile(c.opts.Config) }
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if c.opts.Timeout > 0 {
		cfg.Client.Timeout = c.opts.Timeout
	}

	logger := slog.New(tint.NewHandler(c.stderr, &tint.Options{Level: slog.LevelWarn}))
	return c.newService(cfg, logger), nil
}

func (c *cli) dictionary(text string) error {
	svc, err := c.service()
	if err != nil {
		return err
	}

	ch, err := svc.LookupAsync(c.ctx, text)
	if err != nil {
		return err
	}
	entry, err := (<-ch).Unpack()
	if err != nil {
		return &requestError{err: err}
	}

	if c.opts.JSON {
		return writeJSON(c.stdout, toEntryView(entry))
	}
	renderEntry(c.stdout, entry)
	return nil
}

func (c *cli) translate(text string) error {
	svc, err := c.service()
	if err != nil {
		return err
	}

	ch, err := svc.TranslateAsync(c.ctx, text)
	if err != nil {
		return err
	}
	result, err := (<-ch).Unpack()
	if err != nil {
		return &requestError{err: err}
	}

	if c.opts.JSON {
		return writeJSON(c.stdout, translationView{SourceText: result.SourceText, TranslatedText: result.TranslatedText})
	}
	renderTranslation(c.stdout, result)
	return nil
}
