package driven

import "context"

// URLOpener hands a URL to the platform's default browser.
type URLOpener interface {
	// Open launches the browser and returns once the launch was attempted.
	Open(ctx context.Context, url string) error
}
