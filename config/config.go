package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	HTTP      HTTPConfig      `json:"http"`
	Dispatch  DispatchConfig  `json:"dispatch"`
	Synthesis SynthesisConfig `json:"synthesis"`
	Delivery  DeliveryConfig  `json:"delivery"`
	Discovery DiscoveryConfig `json:"discovery"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type RateLimitConfig struct {
	FeedFetchInterval time.Duration `json:"feed_fetch_interval" env:"RATE_LIMIT_FEED_FETCH_INTERVAL" default:"2s"`
	FeedFetchBurst    int           `json:"feed_fetch_burst" env:"RATE_LIMIT_FEED_FETCH_BURST" default:"2"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	FeedFetchTimeout    time.Duration `json:"feed_fetch_timeout" env:"HTTP_FEED_FETCH_TIMEOUT" default:"10s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

type DispatchConfig struct {
	Workers          int           `json:"workers" env:"DISPATCH_WORKERS" default:"4"`
	QueueSize        int           `json:"queue_size" env:"DISPATCH_QUEUE_SIZE" default:"64"`
	RunTimeout       time.Duration `json:"run_timeout" env:"DISPATCH_RUN_TIMEOUT" default:"5m"`
	DefaultLookback  int           `json:"default_lookback_days" env:"DISPATCH_DEFAULT_LOOKBACK_DAYS" default:"1"`
	ForcedLookback   int           `json:"forced_lookback_days" env:"DISPATCH_FORCED_LOOKBACK_DAYS" default:"3"`
	TrialDays        int           `json:"trial_days" env:"DISPATCH_TRIAL_DAYS" default:"7"`
	ScheduleInterval time.Duration `json:"schedule_interval" env:"DISPATCH_SCHEDULE_INTERVAL" default:"1m"`
}

type SynthesisConfig struct {
	OpenAIAPIKey    string        `json:"-" env:"OPENAI_API_KEY"`
	OpenAIModel     string        `json:"openai_model" env:"OPENAI_MODEL" default:"gpt-4o-mini"`
	AnthropicAPIKey string        `json:"-" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `json:"anthropic_model" env:"ANTHROPIC_MODEL" default:"claude-3-5-haiku-latest"`
	DefaultProvider string        `json:"default_provider" env:"SYNTHESIS_DEFAULT_PROVIDER" default:"openai"`
	RequestTimeout  time.Duration `json:"request_timeout" env:"SYNTHESIS_REQUEST_TIMEOUT" default:"120s"`
	MaxItems        int           `json:"max_items" env:"SYNTHESIS_MAX_ITEMS" default:"40"`
}

type DeliveryConfig struct {
	APIBase     string        `json:"api_base" env:"DELIVERY_API_BASE" default:"https://api.resend.com"`
	APIKey      string        `json:"-" env:"DELIVERY_API_KEY"`
	FromAddress string        `json:"from_address" env:"DELIVERY_FROM_ADDRESS" default:"briefing@updates.example.com"`
	Timeout     time.Duration `json:"timeout" env:"DELIVERY_TIMEOUT" default:"30s"`
}

type DiscoveryConfig struct {
	ProviderTimeout time.Duration `json:"provider_timeout" env:"DISCOVERY_PROVIDER_TIMEOUT" default:"6s"`
	BridgeTimeout   time.Duration `json:"bridge_timeout" env:"DISCOVERY_BRIDGE_TIMEOUT" default:"4s"`
	ResultsPerKind  int           `json:"results_per_kind" env:"DISCOVERY_RESULTS_PER_KIND" default:"5"`
	YouTubeAPIKey   string        `json:"-" env:"YOUTUBE_API_KEY"`
	BridgeHosts     []string      `json:"bridge_hosts" env:"DISCOVERY_BRIDGE_HOSTS" default:"nitter.net,nitter.poast.org,nitter.privacydev.net"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
