package inspect

import "log/slog"

// MarkdownRenderer converts markdown description text into display-ready
// text. The zero value (nil) leaves text untouched.
type MarkdownRenderer func(string) string

// Options configures inspection behavior.
type Options struct {
	// DocsBaseURL, when set, is used to derive per-method documentation
	// links for methods without their own externalDocs entry.
	DocsBaseURL string
	Render      MarkdownRenderer
	Logger      *slog.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{}
}

func (o *Options) render(text string) string {
	if text == "" || o.Render == nil {
		return text
	}
	return o.Render(text)
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
