package ports

import "context"

// Generator is the gateway to the generative AI provider. All four operations
// are independent and fallible; no retries, coalescing, or caching happen at
// this layer.
type Generator interface {
	// GenerateText returns plain generated text for a prompt, optionally
	// steered by a system instruction.
	GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error)
	// GenerateImage returns a data URI (mime+base64), or nil when the provider
	// response contains no inline image part. Absence is not an error.
	GenerateImage(ctx context.Context, prompt string) (*string, error)
	// GenerateAudio returns the raw base64 audio payload; callers wrap it in a
	// playable data URI themselves.
	GenerateAudio(ctx context.Context, text string) (string, error)
	// GenerateVideo submits a long-running job and polls it to completion,
	// returning a signed URI with the credential parameter appended. The poll
	// is bounded and honours ctx cancellation.
	GenerateVideo(ctx context.Context, prompt string) (string, error)
}
