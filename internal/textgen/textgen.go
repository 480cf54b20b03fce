// Package textgen wraps the external text-generation service used by the
// resume builder. The service is opaque and may be absent or failing; every
// call site has a deterministic template fallback, so generation as a whole
// never fails.
package textgen

import (
	"context"
	"log/slog"

	"devconnect/internal/models"
)

// Generator produces text from a prompt under a system instruction.
type Generator interface {
	GenerateText(ctx context.Context, prompt, system string) (string, error)
}

// Source identifies which path produced a result.
type Source string

const (
	SourceService  Source = "service"
	SourceTemplate Source = "template"
)

// Result carries generated text and where it came from.
type Result struct {
	Text   string
	Source Source
}

// Fallback composes an optional primary Generator with a deterministic
// template path. A nil or failing primary silently degrades to the template;
// the failure is logged for diagnostics.
type Fallback struct {
	primary Generator
	logger  *slog.Logger
}

// NewFallback creates a Fallback. primary may be nil when no service is
// configured.
func NewFallback(primary Generator, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{primary: primary, logger: logger}
}

// Generate tries the service, then the supplied template function. The
// template path cannot fail, so Generate always returns a result.
func (f *Fallback) Generate(ctx context.Context, prompt, system string, template func() string) Result {
	if f.primary != nil {
		text, err := f.primary.GenerateText(ctx, prompt, system)
		if err == nil {
			return Result{Text: text, Source: SourceService}
		}
		serviceErr := models.NewExternalServiceError("text generation failed", err)
		f.logger.WarnContext(ctx, "text generation failed, using template fallback",
			slog.String("error", serviceErr.Error()),
		)
	}
	return Result{Text: template(), Source: SourceTemplate}
}

// FakeGenerator is a scriptable Generator for tests.
type FakeGenerator struct {
	Text string
	Err  error
}

func (f *FakeGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}
