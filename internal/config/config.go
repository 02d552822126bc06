package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Game     Game    `yaml:"game"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite-path" env:"STORAGE_SQLITE_PATH" env-default:"tictactoe.db"`
}

type Redis struct {
	Host      string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password  string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB        int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix string `yaml:"key-prefix" env:"REDIS_KEY_PREFIX" env-default:"tictactoe:"`
}

type Game struct {
	ResetScoreOnReplay bool `yaml:"reset-score-on-replay" env:"GAME_RESET_SCORE_ON_REPLAY" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
