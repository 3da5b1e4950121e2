package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Kafka          KafkaConfig          `mapstructure:"kafka"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Security       SecurityConfig       `mapstructure:"security"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConnections int           `mapstructure:"max_connections"`
	MaxIdleTime    time.Duration `mapstructure:"max_idle_time"`
	MaxLifetime    time.Duration `mapstructure:"max_lifetime"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	URL        string        `mapstructure:"url"`
	MaxRetries int           `mapstructure:"max_retries"`
	PoolSize   int           `mapstructure:"pool_size"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topics  struct {
		RatingEvents string `mapstructure:"rating_events"`
	} `mapstructure:"topics"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RecommendationConfig holds the scoring thresholds and limits used by
// the recommendation strategies. Everything here is tunable through the
// config file or environment variables.
type RecommendationConfig struct {
	PositiveRatingThreshold float64 `mapstructure:"positive_rating_threshold"`
	MinSimilarityScore      float64 `mapstructure:"min_similarity_score"`
	MinPredictedScore       float64 `mapstructure:"min_predicted_score"`
	MinimalCommonMovies     int     `mapstructure:"minimal_common_movies"`
	NeighborLimit           int     `mapstructure:"neighbor_limit"`
	ContentCandidateLimit   int     `mapstructure:"content_candidate_limit"`
	DefaultOutputLimit      int     `mapstructure:"default_output_limit"`
	HybridWeightAlpha       float64 `mapstructure:"hybrid_weight_alpha"`
	HybridMergeLimit        int     `mapstructure:"hybrid_merge_limit"`
}

type SecurityConfig struct {
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "development")

	// Database defaults
	viper.SetDefault("database.url", "postgres://localhost:5432/flickpick")
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_time", "15m")
	viper.SetDefault("database.max_lifetime", "1h")
	viper.SetDefault("database.connect_timeout", "10s")

	// Redis defaults
	viper.SetDefault("redis.url", "redis://localhost:6379/0")
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.cache_ttl", "5m")

	// Kafka defaults
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topics.rating_events", "rating-events")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Recommendation defaults
	viper.SetDefault("recommendation.positive_rating_threshold", 4.0)
	viper.SetDefault("recommendation.min_similarity_score", 0.1)
	viper.SetDefault("recommendation.min_predicted_score", 3.0)
	viper.SetDefault("recommendation.minimal_common_movies", 3)
	viper.SetDefault("recommendation.neighbor_limit", 10)
	viper.SetDefault("recommendation.content_candidate_limit", 200)
	viper.SetDefault("recommendation.default_output_limit", 10)
	viper.SetDefault("recommendation.hybrid_weight_alpha", 0.6)
	viper.SetDefault("recommendation.hybrid_merge_limit", 50)

	// Security defaults
	viper.SetDefault("security.cors.allowed_origins", []string{"*"})
	viper.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors.allowed_headers", []string{"*"})
}
