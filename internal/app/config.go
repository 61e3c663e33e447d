package app

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/utils"
)

type Config struct {
	Port                 string
	CORSOrigins          []string
	JWTSecretKey         string
	AccessTokenTTL       time.Duration
	SchedulerInterval    time.Duration
	SchedulerParallelism int
}

// fileConfig is the optional YAML config file shape. Anything set here wins
// over the environment; anything absent falls back to it.
type fileConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	Scheduler   struct {
		Interval    string `yaml:"interval"`
		Parallelism int    `yaml:"parallelism"`
	} `yaml:"scheduler"`
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:                 utils.GetEnv("PORT", "8080", log),
		JWTSecretKey:         utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL:       time.Duration(utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)) * time.Second,
		SchedulerInterval:    utils.GetEnvAsDuration("SCHEDULER_INTERVAL", 60*time.Second, log),
		SchedulerParallelism: utils.GetEnvAsInt("SCHEDULER_PARALLELISM", 4, log),
	}
	if origins := utils.GetEnv("CORS_ORIGINS", "", log); origins != "" {
		cfg.CORSOrigins = splitAndTrim(origins)
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return cfg
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Config file unreadable, using environment only", "path", path, "error", err)
		return cfg
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Warn("Config file invalid, using environment only", "path", path, "error", err)
		return cfg
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.Scheduler.Interval != "" {
		if d, err := time.ParseDuration(fc.Scheduler.Interval); err == nil && d > 0 {
			cfg.SchedulerInterval = d
		} else {
			log.Warn("Invalid scheduler interval in config file", "value", fc.Scheduler.Interval)
		}
	}
	if fc.Scheduler.Parallelism > 0 {
		cfg.SchedulerParallelism = fc.Scheduler.Parallelism
	}
	log.Info("Loaded config file", "path", path)
	return cfg
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
