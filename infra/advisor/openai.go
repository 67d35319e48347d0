package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	coreadvisor "github.com/kilianp07/packtherm/core/advisor"
	"github.com/kilianp07/packtherm/core/model"
	"github.com/kilianp07/packtherm/infra/logger"
)

// Config defines the connection parameters for the advisory backend.
// The endpoint must speak the OpenAI chat-completions protocol.
type Config struct {
	Enabled        bool   `json:"enabled"`
	URL            string `json:"url"`
	APIKey         string `json:"api_key"`
	Model          string `json:"model"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = "https://api.openai.com/v1/chat/completions"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
}

// OpenAIAdvisor requests a free-text recommendation from a
// chat-completions endpoint. Its latency and availability are outside
// the engine's control; callers degrade to the static fallback on any
// error.
type OpenAIAdvisor struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewOpenAIAdvisor creates an advisor client from the configuration.
func NewOpenAIAdvisor(cfg Config) *OpenAIAdvisor {
	cfg.SetDefaults()
	return &OpenAIAdvisor{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    logger.New("advisor"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Advise asks the backend for an operational recommendation for the
// given run. The returned error wraps advisor.ErrUnavailable when the
// backend cannot be reached or answers with a non-200 status.
func (a *OpenAIAdvisor) Advise(ctx context.Context, cfg model.SimulationConfig, sum model.Summary) (string, error) {
	prompt := fmt.Sprintf(
		"An EV battery pack (%.0f kWh, %.0f V, %.1f mΩ) was discharged at %.2fC for %d minutes with %s cooling. "+
			"Peak temperature reached %.1f°C (risk tier: %s) at %.2f%% average efficiency. "+
			"Give a short operational recommendation.",
		cfg.CapacityKWh, cfg.NominalVoltage, cfg.InternalResistanceMilliOhm,
		cfg.CRate, cfg.DurationMinutes, cfg.Cooling,
		sum.PeakTempC, sum.Risk, sum.AvgEfficiencyPct,
	)

	body, err := json.Marshal(chatRequest{
		Model:    a.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	a.log.Debugf("requesting advisory from %s", a.cfg.URL)
	req.Header.Set("Content-Type", "application/json")
	if a.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", coreadvisor.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d, body: %s", coreadvisor.ErrUnavailable, resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", coreadvisor.ErrUnavailable)
	}
	return parsed.Choices[0].Message.Content, nil
}
