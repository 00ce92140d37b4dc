package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/alzin/comy-chatsync/pkg/constant"
)

// Config holds all configuration
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	WebSocket WebSocketConfig `mapstructure:"websocket"`
	Bot       BotConfig       `mapstructure:"bot"`
	Session   SessionConfig   `mapstructure:"session"`
}

// APIConfig holds snapshot provider configuration
type APIConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// WebSocketConfig holds event channel configuration
type WebSocketConfig struct {
	URL              string        `mapstructure:"url"`
	MaxMessageSize   int64         `mapstructure:"max_message_size"`
	WriteWait        time.Duration `mapstructure:"write_wait"`
	PongWait         time.Duration `mapstructure:"pong_wait"`
	PingPeriod       time.Duration `mapstructure:"ping_period"`
	WriteChannelSize int           `mapstructure:"write_channel_size"`
}

// BotConfig holds bot-conversation identification settings
type BotConfig struct {
	Name  string `mapstructure:"name"`
	Image string `mapstructure:"image"`
}

// SessionConfig holds viewer session settings
type SessionConfig struct {
	Token      string `mapstructure:"token"`
	JWTSecret  string `mapstructure:"jwt_secret"`
	PlatformId int    `mapstructure:"platform_id"`
}

// Global config instance
var GlobalConfig *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080"
	}
	if cfg.API.DialTimeout == 0 {
		cfg.API.DialTimeout = 10 * time.Second
	}
	if cfg.API.ReadTimeout == 0 {
		cfg.API.ReadTimeout = 30 * time.Second
	}
	if cfg.API.WriteTimeout == 0 {
		cfg.API.WriteTimeout = 30 * time.Second
	}
	if cfg.WebSocket.URL == "" {
		cfg.WebSocket.URL = "ws://localhost:8080/ws"
	}
	if cfg.WebSocket.MaxMessageSize == 0 {
		cfg.WebSocket.MaxMessageSize = 51200
	}
	if cfg.WebSocket.WriteWait == 0 {
		cfg.WebSocket.WriteWait = 10 * time.Second
	}
	if cfg.WebSocket.PongWait == 0 {
		cfg.WebSocket.PongWait = 30 * time.Second
	}
	if cfg.WebSocket.PingPeriod == 0 {
		cfg.WebSocket.PingPeriod = 27 * time.Second
	}
	if cfg.WebSocket.WriteChannelSize == 0 {
		cfg.WebSocket.WriteChannelSize = 256
	}
	if cfg.Bot.Name == "" {
		cfg.Bot.Name = constant.DefaultBotName
	}
	if cfg.Bot.Image == "" {
		cfg.Bot.Image = constant.DefaultBotImage
	}
	if cfg.Session.PlatformId == 0 {
		cfg.Session.PlatformId = constant.PlatformIdWeb
	}

	GlobalConfig = &cfg
	return &cfg, nil
}
