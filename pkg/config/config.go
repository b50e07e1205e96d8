package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Engine  EngineConfig
	Anneal  AnnealConfig
	Genetic GeneticConfig
	Swarm   SwarmConfig
	Tabu    TabuConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// EngineConfig carries the per-run knobs shared by every strategy.
type EngineConfig struct {
	Algorithm      string
	MaxResults     int
	MaxCredits     float64
	AllowConflicts bool
	MaxConflicts   int
	Timeout        time.Duration
	Seed           int64
	DepthIncrement int
	MaxIterations  int
}

// AnnealConfig tunes the simulated-annealing optimizer.
type AnnealConfig struct {
	InitialTemp     float64
	CoolingRate     float64
	StagnationLimit int
}

// GeneticConfig tunes the genetic algorithm.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
}

// SwarmConfig tunes particle-swarm optimization.
type SwarmConfig struct {
	Size      int
	Inertia   float64
	Cognitive float64
	Social    float64
}

// TabuConfig tunes tabu search.
type TabuConfig struct {
	Tenure int
}

// CatalogConfig points at the course catalog source.
type CatalogConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig governs result caching.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles Prometheus instrumentation.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Engine = EngineConfig{
		Algorithm:      v.GetString("ENGINE_ALGORITHM"),
		MaxResults:     v.GetInt("ENGINE_MAX_RESULTS"),
		MaxCredits:     v.GetFloat64("ENGINE_MAX_CREDITS"),
		AllowConflicts: v.GetBool("ENGINE_ALLOW_CONFLICTS"),
		MaxConflicts:   v.GetInt("ENGINE_MAX_CONFLICTS"),
		Timeout:        parseDuration(v.GetString("ENGINE_TIMEOUT"), 10*time.Second),
		Seed:           v.GetInt64("ENGINE_SEED"),
		DepthIncrement: v.GetInt("ENGINE_DEPTH_INCREMENT"),
		MaxIterations:  v.GetInt("ENGINE_MAX_ITERATIONS"),
	}

	cfg.Anneal = AnnealConfig{
		InitialTemp:     v.GetFloat64("ANNEAL_INITIAL_TEMP"),
		CoolingRate:     v.GetFloat64("ANNEAL_COOLING_RATE"),
		StagnationLimit: v.GetInt("ANNEAL_STAGNATION_LIMIT"),
	}

	cfg.Genetic = GeneticConfig{
		PopulationSize: v.GetInt("GENETIC_POPULATION_SIZE"),
		Generations:    v.GetInt("GENETIC_GENERATIONS"),
		CrossoverRate:  v.GetFloat64("GENETIC_CROSSOVER_RATE"),
		MutationRate:   v.GetFloat64("GENETIC_MUTATION_RATE"),
	}

	cfg.Swarm = SwarmConfig{
		Size:      v.GetInt("SWARM_SIZE"),
		Inertia:   v.GetFloat64("SWARM_INERTIA"),
		Cognitive: v.GetFloat64("SWARM_COGNITIVE"),
		Social:    v.GetFloat64("SWARM_SOCIAL"),
	}

	cfg.Tabu = TabuConfig{
		Tenure: v.GetInt("TABU_TENURE"),
	}

	cfg.Catalog = CatalogConfig{
		Path: v.GetString("CATALOG_PATH"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("CACHE_ENABLED"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 10*time.Minute),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled:   v.GetBool("METRICS_ENABLED"),
		Namespace: v.GetString("METRICS_NAMESPACE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("ENGINE_ALGORITHM", "")
	v.SetDefault("ENGINE_MAX_RESULTS", 10)
	v.SetDefault("ENGINE_MAX_CREDITS", 0)
	v.SetDefault("ENGINE_ALLOW_CONFLICTS", false)
	v.SetDefault("ENGINE_MAX_CONFLICTS", 0)
	v.SetDefault("ENGINE_TIMEOUT", "10s")
	v.SetDefault("ENGINE_SEED", 0)
	v.SetDefault("ENGINE_DEPTH_INCREMENT", 1)
	v.SetDefault("ENGINE_MAX_ITERATIONS", 1000)

	v.SetDefault("ANNEAL_INITIAL_TEMP", 1000.0)
	v.SetDefault("ANNEAL_COOLING_RATE", 0.95)
	v.SetDefault("ANNEAL_STAGNATION_LIMIT", 50)

	v.SetDefault("GENETIC_POPULATION_SIZE", 40)
	v.SetDefault("GENETIC_GENERATIONS", 60)
	v.SetDefault("GENETIC_CROSSOVER_RATE", 0.7)
	v.SetDefault("GENETIC_MUTATION_RATE", 0.1)

	v.SetDefault("SWARM_SIZE", 30)
	v.SetDefault("SWARM_INERTIA", 0.4)
	v.SetDefault("SWARM_COGNITIVE", 0.3)
	v.SetDefault("SWARM_SOCIAL", 0.2)

	v.SetDefault("TABU_TENURE", 25)

	v.SetDefault("CATALOG_PATH", "./catalog.csv")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL", "10m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("METRICS_ENABLED", false)
	v.SetDefault("METRICS_NAMESPACE", "scheduler")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
