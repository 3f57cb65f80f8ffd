// Package assistant is the NOVA gateway: portal questions answered by a
// Gemini model grounded in the company context and the knowledge base.
package assistant

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"nexusportal/internal/config"
	"nexusportal/internal/portal"
)

// Fixed answers for the failure paths. The gateway never surfaces an
// error to the caller; a broken upstream reads like a busy assistant.
const (
	fallbackChat    = "I'm having trouble connecting to the Nexus neural network. Please try again later."
	fallbackEmpty   = "I'm processing that, but couldn't generate a text response."
	fallbackSearch  = "Search system temporarily unavailable."
	fallbackNoMatch = "No results found."
)

// Turn is one prior exchange in a conversation. Role is "user" or
// "model"; anything else is treated as "user".
type Turn struct {
	Role string
	Text string
}

type Gateway struct {
	client      *genai.Client
	model       string
	temperature float32
	system      string
	log         *zap.Logger
}

// New builds a gateway from the assistant config. The API key is read
// from the configured environment variable, never from the config file.
func New(ctx context.Context, cfg config.AssistantConfig, system string, log *zap.Logger) (*Gateway, error) {
	if log == nil {
		log = zap.NewNop()
	}

	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("assistant API key: environment variable %s is not set", cfg.APIKeyEnv)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating assistant client: %w", err)
	}

	return &Gateway{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		system:      system,
		log:         log,
	}, nil
}

// Respond answers a chat prompt with the company context as system
// instruction and the prior turns replayed in order.
func (g *Gateway) Respond(ctx context.Context, prompt string, history []Turn) string {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.system, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	})
	if err != nil {
		g.log.Warn("assistant chat failed", zap.Error(err))
		return fallbackChat
	}

	text := resp.Text()
	if text == "" {
		return fallbackEmpty
	}
	return text
}

// QueryKnowledge answers a question from the given documents only. The
// docs come from the session mirror, so the assistant sees exactly what
// the knowledge base view shows.
func (g *Gateway) QueryKnowledge(ctx context.Context, query string, docs []portal.KnowledgeDoc) string {
	var b strings.Builder
	b.WriteString("You are an expert AI search engine for Nexus Corp.\n")
	b.WriteString("Use the following internal documents to answer the employee's question.\n")
	b.WriteString("If the answer is not in the documents, state that you cannot find the specific information in the knowledge base.\n\n")
	b.WriteString("DOCUMENTS:\n")
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Title: %s\nContent: %s", doc.Title, doc.Content)
	}
	fmt.Fprintf(&b, "\n\nQUESTION: %s\n\nANSWER:\n", query)

	contents := []*genai.Content{
		genai.NewContentFromText(b.String(), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.log.Warn("knowledge base query failed", zap.Error(err))
		return fallbackSearch
	}

	text := resp.Text()
	if text == "" {
		return fallbackNoMatch
	}
	return text
}
