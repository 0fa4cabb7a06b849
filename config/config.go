package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider backends.
const (
	BackendHeuristic = "heuristic"
	BackendHTTP      = "http"
	BackendGRPC      = "grpc"
)

type Service struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}
type Services struct {
	Sentiment Service `mapstructure:"sentiment"`
	Emotion   Service `mapstructure:"emotion"`
	Embedding Service `mapstructure:"embedding"`
	Grammar   Service `mapstructure:"grammar"`
	Inference Service `mapstructure:"inference"` // gRPC address, host:port
}
type Providers struct {
	Backend      string `mapstructure:"backend"`
	EmbeddingDim int    `mapstructure:"embedding_dim"`
	Timeout      int    `mapstructure:"timeout"` // seconds, HTTP backend
}
type Analysis struct {
	Topic string `mapstructure:"topic"`
	Seed  uint64 `mapstructure:"seed"` // 0 = vary phrasing every run
}
type Server struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	GRPCPort     int    `mapstructure:"grpc_port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}
type Root struct {
	Pipeline struct {
		Name      string `mapstructure:"name"`
		Version   string `mapstructure:"version"`
		LogLvl    string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"pipeline"`
	Providers Providers `mapstructure:"providers"`
	Services  Services  `mapstructure:"services"`
	Analysis  Analysis  `mapstructure:"analysis"`
	Server    Server    `mapstructure:"server"`
	Paths     struct {
		Outputs string `mapstructure:"outputs"`
		Store   string `mapstructure:"store"`
	} `mapstructure:"paths"`
}

// EnvPrefix namespaces environment overrides, e.g. DEBATE_PROVIDERS_BACKEND.
const EnvPrefix = "DEBATE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "debate-analyzer")
	v.SetDefault("pipeline.version", "dev")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")
	v.SetDefault("providers.backend", BackendHeuristic)
	v.SetDefault("providers.embedding_dim", 384)
	v.SetDefault("providers.timeout", 60)
	v.SetDefault("services.sentiment.url", "http://localhost:8001")
	v.SetDefault("services.emotion.url", "http://localhost:8002")
	v.SetDefault("services.embedding.url", "http://localhost:1234")
	v.SetDefault("services.grammar.url", "http://localhost:8003")
	v.SetDefault("services.inference.url", "localhost:50051")
	v.SetDefault("analysis.topic", "")
	v.SetDefault("analysis.seed", 0)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("paths.outputs", "data")
	v.SetDefault("paths.store", filepath.Join("data", "debate.db"))
}

// New returns a viper instance with defaults, env overrides and the config search path.
// explicit, when set, is the only config file considered.
func New(explicit string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
		return v
	}
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join("config", env))
	v.AddConfigPath(".")
	return v
}

// Load reads the config file if one is found; a missing file falls back to defaults.
func Load(v *viper.Viper) (*Root, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Root) Validate() error {
	switch c.Providers.Backend {
	case BackendHeuristic, BackendHTTP, BackendGRPC:
	default:
		return fmt.Errorf("config: unknown providers.backend %q (valid: heuristic, http, grpc)", c.Providers.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	return nil
}

func (s Server) Address() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

func (s Server) GRPCAddress() string { return fmt.Sprintf("%s:%d", s.Host, s.GRPCPort) }

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
