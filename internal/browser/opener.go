// Package browser drives MyScrumTeam through a headless Chrome controlled by
// chromedp. Every Open starts its own browser process.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/diegoclair/myscrumteam-bot/internal/config"
	"github.com/diegoclair/myscrumteam-bot/internal/domain"
	"github.com/diegoclair/myscrumteam-bot/internal/domain/contract"
)

// DefaultUserAgent is a desktop Chrome; MyScrumTeam serves different markup
// to headless and mobile agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/61.0.3163.100 Safari/537.36"

type Options struct {
	BaseURL  string
	Username string
	Password string

	Headless       bool
	ExecPath       string
	UserAgent      string
	ViewportWidth  int64
	ViewportHeight int64

	WaitTimeout time.Duration
	SettleDelay time.Duration

	Selectors Selectors
}

// OptionsFromConfig builds the opener options for the configured account.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BaseURL:        cfg.ScrumBaseURL,
		Username:       cfg.ScrumUsername,
		Password:       cfg.ScrumPassword,
		Headless:       cfg.Headless,
		ExecPath:       cfg.BrowserPath,
		UserAgent:      DefaultUserAgent,
		ViewportWidth:  1280,
		ViewportHeight: 720,
		WaitTimeout:    cfg.WaitTimeout,
		SettleDelay:    domain.SettleDelay,
		Selectors:      DefaultSelectors,
	}
}

var _ contract.SiteOpener = (*Opener)(nil)
var _ contract.RemoteCalendarSite = (*site)(nil)

type Opener struct {
	opts   Options
	logger *slog.Logger
}

func NewOpener(opts Options, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{opts: opts, logger: logger}
}

func (o *Opener) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", o.opts.Headless),
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(o.opts.UserAgent),
		chromedp.WindowSize(int(o.opts.ViewportWidth), int(o.opts.ViewportHeight)),
	)
	if o.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.opts.ExecPath))
	}
	return opts
}

// Open launches a browser with the desktop viewport applied. The returned
// site owns the browser process until Close.
func (o *Opener) Open(ctx context.Context) (contract.RemoteCalendarSite, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, o.allocatorOptions()...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			o.logger.Debug("chromedp", "message", fmt.Sprintf(format, args...))
		}),
	)

	cancel := func() {
		tabCancel()
		allocCancel()
	}

	if err := chromedp.Run(tabCtx, chromedp.EmulateViewport(o.opts.ViewportWidth, o.opts.ViewportHeight)); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	o.logger.Debug("browser session opened", "headless", o.opts.Headless)
	return &site{
		tab:    tabCtx,
		cancel: cancel,
		opts:   o.opts,
		logger: o.logger,
	}, nil
}
