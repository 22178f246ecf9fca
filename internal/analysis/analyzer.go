// Package analysis asks a vision model to read seed values off a screenshot
// of an existing design. It is the only part of brandkit that performs
// network I/O; its result is an ordinary seed.Analysis.
package analysis

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// MessagesClient is the part of the Anthropic SDK the analyzer uses, so tests
// can substitute a fake.
type MessagesClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Analyzer extracts seed values from images.
type Analyzer struct {
	client MessagesClient
	config Config
}

// New creates an Analyzer backed by the Anthropic API.
func New(cfg Config) (*Analyzer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	return &Analyzer{client: &client.Messages, config: cfg}, nil
}

// NewWithClient creates an Analyzer around an existing client. The API key in
// cfg is not required.
func NewWithClient(client MessagesClient, cfg Config) *Analyzer {
	return &Analyzer{client: client, config: cfg.withDefaults()}
}

// AnalyzeFile reads an image from disk and analyzes it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (seed.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return seed.Analysis{}, brandkiterrors.NewAnalysisError("read", err)
	}
	return a.Analyze(ctx, data)
}

// Analyze sends image to the model and decodes the seed record it returns.
// The result is raw model output; pass it through seed.FromAnalysis before use.
func (a *Analyzer) Analyze(ctx context.Context, image []byte) (seed.Analysis, error) {
	mediaType, err := DetectMediaType(image)
	if err != nil {
		return seed.Analysis{}, brandkiterrors.NewAnalysisError("upload", err)
	}

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	msg, err := a.client.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.config.Model),
		MaxTokens: a.config.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, base64.StdEncoding.EncodeToString(image)),
				anthropic.NewTextBlock(Prompt()),
			),
		},
	})
	if err != nil {
		return seed.Analysis{}, brandkiterrors.NewAnalysisError("request", err)
	}
	if msg == nil {
		return seed.Analysis{}, brandkiterrors.NewAnalysisError("request", errors.New("empty response"))
	}

	text := firstText(msg)
	if text == "" {
		return seed.Analysis{}, brandkiterrors.NewAnalysisError("decode", errors.New("response contained no text"))
	}

	result, err := ParseResponse(text)
	if err != nil {
		return seed.Analysis{}, brandkiterrors.NewAnalysisError("decode", fmt.Errorf("parse model output: %w", err))
	}
	return result, nil
}

func firstText(msg *anthropic.Message) string {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}
