// Package genai implements the text generation service on Google's Gemini API.
package genai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"mindset/config"
	"mindset/internal/domain/entity"
	"mindset/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// geminiGenerator implements service.TextGenerator.
type geminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// reactionSchema constrains classification calls to a boolean plus a reply.
var reactionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"affirmed": {Type: genai.TypeBoolean},
		"response": {Type: genai.TypeString},
	},
	Required: []string{"affirmed", "response"},
}

// NewGeminiGenerator creates the Gemini-backed text generator.
func NewGeminiGenerator(ctx context.Context, cfg *config.GeminiConfig, logger *slog.Logger) (service.TextGenerator, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GenAI client")
	}

	return &geminiGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// Generate returns free text for the request, or ErrNoOutput when the model
// produced nothing usable within the request timeout.
func (g *geminiGenerator) Generate(ctx context.Context, req *service.GenerateRequest) (string, error) {
	resp, err := g.call(ctx, req, nil)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.WithStack(service.ErrNoOutput)
	}

	return text, nil
}

// GenerateReaction returns a schema-validated boolean-plus-reply object.
func (g *geminiGenerator) GenerateReaction(ctx context.Context, req *service.GenerateRequest) (*service.Reaction, error) {
	resp, err := g.call(ctx, req, reactionSchema)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, errors.WithStack(service.ErrNoOutput)
	}

	var reaction service.Reaction
	if err := json.Unmarshal([]byte(text), &reaction); err != nil {
		g.logger.Warn("Gemini returned malformed structured output",
			slog.String("output", text),
		)

		return nil, errors.Wrap(service.ErrNoOutput, "structured output did not match schema")
	}
	if reaction.Response == "" {
		return nil, errors.Wrap(service.ErrNoOutput, "structured output missing response")
	}

	return &reaction, nil
}

func (g *geminiGenerator) call(ctx context.Context, req *service.GenerateRequest, schema *genai.Schema) (*genai.GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, genai.NewContentFromText(turn.Text, toGenaiRole(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = schema
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		// A timed-out call is indistinguishable from an empty response for
		// the caller: the turn failed and may be retried.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(service.ErrNoOutput, "generation timed out")
		}

		return nil, errors.Wrap(err, "gemini generate content failed")
	}
	if resp == nil {
		return nil, errors.WithStack(service.ErrNoOutput)
	}

	return resp, nil
}

func toGenaiRole(role entity.Role) genai.Role {
	if role == entity.RoleModel {
		return genai.RoleModel
	}

	return genai.RoleUser
}
