// Package browser opens URLs in the platform's default browser.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driven"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Default launch budget: a burst of three, then one every two seconds.
const (
	DefaultBurst    = 3
	DefaultInterval = 2 * time.Second
)

// Ensure Opener implements the interface.
var _ driven.URLOpener = (*Opener)(nil)

// Runner starts an external command without waiting for it.
type Runner func(ctx context.Context, name string, args ...string) error

// Opener launches the system browser.
// Launches beyond the limiter's budget fail fast with domain.ErrRateLimited
// so a held-down key cannot spawn a browser per repeat.
type Opener struct {
	goos    string
	run     Runner
	limiter *rate.Limiter
}

// Option configures an Opener.
type Option func(*Opener)

// WithRunner replaces the command runner (for testing).
func WithRunner(r Runner) Option {
	return func(o *Opener) { o.run = r }
}

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(o *Opener) { o.goos = goos }
}

// WithLimit sets the launch rate limit.
func WithLimit(interval time.Duration, burst int) Option {
	return func(o *Opener) { o.limiter = rate.NewLimiter(rate.Every(interval), burst) }
}

// NewOpener creates an opener for the current platform.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		goos:    runtime.GOOS,
		run:     startCommand,
		limiter: rate.NewLimiter(rate.Every(DefaultInterval), DefaultBurst),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open launches the browser for url.
func (o *Opener) Open(ctx context.Context, url string) error {
	if !o.limiter.Allow() {
		return domain.ErrRateLimited
	}

	name, args, err := command(o.goos, url)
	if err != nil {
		return err
	}
	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

// command returns the platform launcher for url.
func command(goos, url string) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "open", []string{url}, nil
	case osLinux:
		return "xdg-open", []string{url}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// startCommand starts the launcher detached from ctx: the browser must
// outlive the command that opened it.
func startCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	//nolint:gosec // G204: launcher is fixed per platform, URL is validated by the caller.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
