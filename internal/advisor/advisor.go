// Package advisor generates a narrative feasibility assessment for a
// computed study using the Gemini generateContent API. The advisor is a
// commentary layer only: any failure degrades to a fixed fallback message
// and never blocks a calculation.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/calcconstru/calcconstru/pkg/format"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// FallbackMessage is returned whenever the generative API cannot be
// reached or produces no usable text.
const FallbackMessage = "Não foi possível gerar a análise da IA no momento. " +
	"Verifique sua conexão ou tente novamente mais tarde."

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewClient builds an advisor client. An empty apiKey yields a client whose
// Analyze always returns the fallback message.
func NewClient(endpoint, apiKey, model string, logger *zap.Logger) *Client {
	// One request per analysis, no retries: a failed call degrades to the
	// fallback message immediately.
	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

// Enabled reports whether the client has credentials to call the API.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Analyze produces a Markdown assessment of the study. It never returns an
// error to callers: on any failure the fallback message comes back and the
// cause is logged.
func (c *Client) Analyze(ctx context.Context, p project.Project, result engine.Result) string {
	if !c.Enabled() {
		return FallbackMessage
	}

	request := generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(p, result)}}}},
	}

	var response generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(request).
		SetResult(&response).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))

	if err != nil {
		c.logger.Error("advisor API call failed",
			zap.String("op", "advisor.Client.Analyze"),
			zap.Error(err),
		)
		return FallbackMessage
	}
	if resp.IsError() {
		c.logger.Error("advisor API returned error status",
			zap.String("op", "advisor.Client.Analyze"),
			zap.Int("status_code", resp.StatusCode()),
		)
		return FallbackMessage
	}
	if response.Error != nil {
		c.logger.Error("advisor API returned error payload",
			zap.String("op", "advisor.Client.Analyze"),
			zap.Int("code", response.Error.Code),
			zap.String("message", response.Error.Message),
		)
		return FallbackMessage
	}

	text := extractText(response)
	if text == "" {
		c.logger.Warn("advisor API returned no candidates",
			zap.String("op", "advisor.Client.Analyze"),
		)
		return FallbackMessage
	}

	c.logger.Debug("advisor analysis generated",
		zap.String("op", "advisor.Client.Analyze"),
		zap.Int("length", len(text)),
	)
	return text
}

func extractText(response generateResponse) string {
	var b strings.Builder
	for _, candidate := range response.Candidates {
		for _, p := range candidate.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	return strings.TrimSpace(b.String())
}

// BuildPrompt renders the Portuguese analysis prompt from the study inputs
// and computed figures.
func BuildPrompt(p project.Project, result engine.Result) string {
	var b strings.Builder

	b.WriteString("Analise a viabilidade deste empreendimento imobiliário no Brasil:\n")
	fmt.Fprintf(&b, "Nome: %s\n", p.Name)
	fmt.Fprintf(&b, "Tipo: %s (Padrão %s)\n", p.Type, p.Standard)
	fmt.Fprintf(&b, "Área: %.0f m²\n", result.BuiltArea)
	fmt.Fprintf(&b, "Custo do Terreno: %s\n", format.Currency(p.LandValue))
	fmt.Fprintf(&b, "VGV Projetado: %s\n", format.Currency(result.VGV))
	fmt.Fprintf(&b, "Custo Total: %s\n", format.Currency(result.TotalCost))
	fmt.Fprintf(&b, "Lucro Estimado: %s\n", format.Currency(result.Profit))
	fmt.Fprintf(&b, "ROI: %.2f%%\n", result.ROI)

	b.WriteString("\nPor favor, forneça:\n")
	b.WriteString("1. Uma breve avaliação da lucratividade.\n")
	b.WriteString("2. Riscos potenciais (ex: custo de fundação alto para a área, margem apertada).\n")
	b.WriteString("3. Sugestões de melhoria (ex: otimização de m² ou aumento do VGV).\n")
	b.WriteString("4. Conclusão se o projeto parece viável.\n")
	b.WriteString("\nResponda em formato Markdown, seja profissional e técnico.\n")

	return b.String()
}
