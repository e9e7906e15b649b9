package genai

// Wire types for the provider's generateContent and long-running video
// endpoints. Only the fields this gateway reads or writes are modelled.

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// --- long-running video job ---

type videoRequest struct {
	Prompt string       `json:"prompt"`
	Config *videoConfig `json:"config,omitempty"`
}

type videoConfig struct {
	NumberOfVideos int    `json:"numberOfVideos,omitempty"`
	Resolution     string `json:"resolution,omitempty"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
}

type videoOperation struct {
	Name     string         `json:"name"`
	Done     bool           `json:"done"`
	Response *videoResponse `json:"response,omitempty"`
}

type videoResponse struct {
	GeneratedVideos []generatedVideo `json:"generatedVideos"`
}

type generatedVideo struct {
	Video videoRef `json:"video"`
}

type videoRef struct {
	URI string `json:"uri"`
}
