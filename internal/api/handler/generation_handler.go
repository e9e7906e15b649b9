package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/api/metrics"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// GenerationHandler fronts the generative provider. Each endpoint is a thin
// pass-through: prompt in, artifact out, instrumented per operation.
type GenerationHandler struct {
	generator ports.Generator
}

func NewGenerationHandler(generator ports.Generator) *GenerationHandler {
	return &GenerationHandler{generator: generator}
}

type generateTextRequest struct {
	Prompt            string `json:"prompt" validate:"required"`
	SystemInstruction string `json:"system_instruction"`
}

type generatePromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type generateAudioRequest struct {
	Text string `json:"text" validate:"required"`
}

type generateTextResponse struct {
	Text string `json:"text"`
}

type generateImageResponse struct {
	// Image is a data URI, or null when the provider returned no image.
	Image *string `json:"image"`
}

type generateAudioResponse struct {
	// Audio is the raw base64 payload; clients build the data URI.
	Audio string `json:"audio"`
}

type generateVideoResponse struct {
	VideoURL string `json:"video_url"`
}

// Text generates plain text for a prompt.
//
// @Summary      Generate text
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateTextRequest  true  "Prompt"
// @Success      200   {object}  generateTextResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/generate/text [post]
func (h *GenerationHandler) Text(c echo.Context) error {
	var req generateTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	done := observeGeneration("text")
	text, err := h.generator.GenerateText(c.Request().Context(), req.Prompt, req.SystemInstruction)
	done(err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateTextResponse{Text: text})
}

// Image generates an image for a prompt. A null image means the provider
// produced no visual output for this prompt; that is not an error.
//
// @Summary      Generate an image
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generatePromptRequest  true  "Prompt"
// @Success      200   {object}  generateImageResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/generate/image [post]
func (h *GenerationHandler) Image(c echo.Context) error {
	var req generatePromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	done := observeGeneration("image")
	image, err := h.generator.GenerateImage(c.Request().Context(), req.Prompt)
	done(err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateImageResponse{Image: image})
}

// Audio synthesises speech for a text.
//
// @Summary      Generate speech audio
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateAudioRequest  true  "Text to speak"
// @Success      200   {object}  generateAudioResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/generate/audio [post]
func (h *GenerationHandler) Audio(c echo.Context) error {
	var req generateAudioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	done := observeGeneration("audio")
	audio, err := h.generator.GenerateAudio(c.Request().Context(), req.Text)
	done(err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateAudioResponse{Audio: audio})
}

// Video generates a video for a prompt. The request blocks while the
// long-running provider job is polled to completion.
//
// @Summary      Generate a video
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generatePromptRequest  true  "Prompt"
// @Success      200   {object}  generateVideoResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/generate/video [post]
func (h *GenerationHandler) Video(c echo.Context) error {
	var req generatePromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	done := observeGeneration("video")
	url, err := h.generator.GenerateVideo(c.Request().Context(), req.Prompt)
	done(err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateVideoResponse{VideoURL: url})
}

// observeGeneration records one generation attempt; call the returned func
// with the outcome.
func observeGeneration(operation string) func(error) {
	start := time.Now()
	metrics.GenerationRequestsTotal.WithLabelValues(operation).Inc()
	return func(err error) {
		metrics.GenerationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.GenerationErrorsTotal.WithLabelValues(operation).Inc()
		}
	}
}
