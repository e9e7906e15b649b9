// Package genai is the gateway to the generative AI provider. It wraps the
// four generation operations behind ports.Generator; each call is independent
// and unretried, and all provider failures wrap domain.ErrGenerationFailed.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 60
	defaultVoice           = "Kore"
)

// Config carries provider settings. Model names map one operation each.
type Config struct {
	BaseURL    string
	APIKey     string
	TextModel  string
	ImageModel string
	TTSModel   string
	VideoModel string
	// PollInterval is the fixed delay between video job polls.
	PollInterval time.Duration
	// MaxPollAttempts bounds the video poll; 0 means the default.
	MaxPollAttempts int
}

// Client implements ports.Generator over the provider's REST API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = defaultMaxPollAttempts
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// GenerateText returns plain generated text for a prompt.
func (c *Client) GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	resp, err := c.generateContent(ctx, c.cfg.TextModel, req)
	if err != nil {
		return "", err
	}

	for _, p := range firstParts(resp) {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	return "", fmt.Errorf("%w: no text in response", domain.ErrGenerationFailed)
}

// GenerateImage returns a data URI, or nil when the response carries no inline
// image part. Absence is a resolved "no data" state, not an error.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*string, error) {
	req := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}

	resp, err := c.generateContent(ctx, c.cfg.ImageModel, req)
	if err != nil {
		return nil, err
	}

	for _, p := range firstParts(resp) {
		if p.InlineData != nil {
			uri := fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data)
			return &uri, nil
		}
	}
	return nil, nil
}

// GenerateAudio returns the raw base64 audio payload; the caller wraps it in a
// playable data URI.
func (c *Client) GenerateAudio(ctx context.Context, text string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: text}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: defaultVoice}},
			},
		},
	}

	resp, err := c.generateContent(ctx, c.cfg.TTSModel, req)
	if err != nil {
		return "", err
	}

	for _, p := range firstParts(resp) {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return p.InlineData.Data, nil
		}
	}
	return "", fmt.Errorf("%w: no audio in response", domain.ErrGenerationFailed)
}

// GenerateVideo submits a long-running job and polls it at a fixed interval
// until the done flag is set, then returns the signed URI with the credential
// parameter appended. The poll is bounded by MaxPollAttempts and stops early
// when ctx is cancelled (e.g. the requesting view was dismissed).
func (c *Client) GenerateVideo(ctx context.Context, prompt string) (string, error) {
	op, err := c.submitVideo(ctx, prompt)
	if err != nil {
		return "", err
	}

	for attempt := 0; !op.Done; attempt++ {
		if attempt >= c.cfg.MaxPollAttempts {
			return "", fmt.Errorf("%w: video job %s did not complete after %d polls", domain.ErrGenerationFailed, op.Name, attempt)
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, ctx.Err())
		case <-time.After(c.cfg.PollInterval):
		}

		op, err = c.pollVideo(ctx, op.Name)
		if err != nil {
			return "", err
		}
		c.logger.Debug().Str("operation", op.Name).Bool("done", op.Done).Int("attempt", attempt+1).Msg("video job polled")
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video.URI == "" {
		return "", fmt.Errorf("%w: video job returned no uri", domain.ErrGenerationFailed)
	}

	// The media URI needs the API key appended before it is fetchable.
	return op.Response.GeneratedVideos[0].Video.URI + "&key=" + c.cfg.APIKey, nil
}

func (c *Client) generateContent(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, model, c.cfg.APIKey)

	var resp generateResponse
	if err := c.post(ctx, url, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) submitVideo(ctx context.Context, prompt string) (*videoOperation, error) {
	url := fmt.Sprintf("%s/models/%s:predictLongRunning?key=%s", c.cfg.BaseURL, c.cfg.VideoModel, c.cfg.APIKey)
	req := videoRequest{
		Prompt: prompt,
		Config: &videoConfig{NumberOfVideos: 1, Resolution: "720p", AspectRatio: "16:9"},
	}

	var op videoOperation
	if err := c.post(ctx, url, req, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) pollVideo(ctx context.Context, operationName string) (*videoOperation, error) {
	url := fmt.Sprintf("%s/%s?key=%s", c.cfg.BaseURL, operationName, c.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	var op videoOperation
	if err := c.do(httpReq, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: provider returned status %d", domain.ErrGenerationFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}
	return nil
}

// firstParts returns the parts of the first candidate, or nil.
func firstParts(resp *generateResponse) []part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}
