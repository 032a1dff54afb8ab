package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Match  MatchConfig
	Worker WorkerConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// MatchConfig carries the raw MATCH_WEIGHTS override. Parsing and the
// default fallback live in the matching package so the fallback path
// stays an explicit, testable branch.
type MatchConfig struct {
	WeightsJSON string
}

type WorkerConfig struct {
	PollTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	pollTimeout, err := time.ParseDuration(viper.GetString("WORKER_POLL_TIMEOUT"))
	if err != nil {
		pollTimeout = 5 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Match: MatchConfig{
			WeightsJSON: viper.GetString("MATCH_WEIGHTS"),
		},
		Worker: WorkerConfig{
			PollTimeout: pollTimeout,
		},
	}

	return config, nil
}
