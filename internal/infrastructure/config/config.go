package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the trainer.
type Config struct {
	Learner    string           `mapstructure:"learner"`
	Language   string           `mapstructure:"language"`
	Learning   LearningConfig   `mapstructure:"learning"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Log        LogConfig        `mapstructure:"log"`
}

// LearningConfig tunes the smart-learning engine.
type LearningConfig struct {
	PoolSize          int     `mapstructure:"pool_size"`          // words admitted at initialization
	MaxPool           int     `mapstructure:"max_pool"`           // pool ceiling for expansion; 0 = whole vocabulary
	ExpandBatch       int     `mapstructure:"expand_batch"`       // words admitted per expansion
	ReviewProbability float64 `mapstructure:"review_probability"` // chance of re-presenting a mastered word
}

// StorageConfig holds snapshot store configuration.
type StorageConfig struct {
	Path string `mapstructure:"path"` // sqlite database file
}

// VocabularyConfig holds vocabulary source configuration.
type VocabularyConfig struct {
	Dir string `mapstructure:"dir"` // directory of <language>.json word lists
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("learner", "default")
	viper.SetDefault("language", "en")

	viper.SetDefault("learning.pool_size", 10)
	viper.SetDefault("learning.max_pool", 0)
	viper.SetDefault("learning.expand_batch", 3)
	viper.SetDefault("learning.review_probability", 0.2)

	viper.SetDefault("storage.path", "smartvocab.db")
	viper.SetDefault("vocabulary.dir", "vocabulary")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}
