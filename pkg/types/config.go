package types

import "time"

// AIConfig holds shared settings for stages that call the generative model API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gemini-3-flash-preview").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the model API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for rate-limited API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig holds settings for the asset generation pipeline.
type PipelineConfig struct {
	AIConfig `yaml:",inline"`

	// QueueDelay is how long a submitted run sits in the queued stage before
	// a worker picks it up. Tests set this near zero.
	QueueDelay time.Duration `json:"queue_delay" yaml:"queue_delay"`

	// StageDelay paces the informational sub-stage log entries emitted
	// during processing.
	StageDelay time.Duration `json:"stage_delay" yaml:"stage_delay"`
}
