package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSweepQueueDB int    `mapstructure:"REDIS_SWEEP_QUEUE_DB"`

	// Slot engine tunables.
	SlotTickMinutes         int `mapstructure:"SLOT_TICK_MINUTES"`
	SlotCacheTTLSeconds     int `mapstructure:"SLOT_CACHE_TTL_SECONDS"`
	ReservationHoldMinutes  int `mapstructure:"RESERVATION_HOLD_MINUTES"`
	DefaultDurationMinutes  int `mapstructure:"DEFAULT_DURATION_MINUTES"`
	NearestSlotDayEndHour   int `mapstructure:"NEAREST_SLOT_DAY_END_HOUR"`
	NearestSlotDayStartHour int `mapstructure:"NEAREST_SLOT_DAY_START_HOUR"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SWEEP_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SLOT_TICK_MINUTES", 30)
	viper.SetDefault("SLOT_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("RESERVATION_HOLD_MINUTES", 15)
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 60)
	viper.SetDefault("NEAREST_SLOT_DAY_END_HOUR", 20)
	viper.SetDefault("NEAREST_SLOT_DAY_START_HOUR", 9)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
