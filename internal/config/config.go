package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	MQTT      MQTTConfig
	Demand    DemandConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// AdminConfig carries the single service account allowed to mutate
// fleet records. The password is stored as a bcrypt hash; neither
// field has a default.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type MQTTConfig struct {
	Broker         string
	ClientID       string
	Username       string
	Password       string
	StatusTopic    string
	QoS            int
	KeepAlive      int
	ConnectTimeout int
	WorkerCount    int
	BufferSize     int
}

type DemandConfig struct {
	DefaultRadiusKm float64
}

const DefaultSearchRadiusKm = 15.0

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	viper.SetDefault("DEMAND_DEFAULT_RADIUS_KM", DefaultSearchRadiusKm)
	viper.SetDefault("RATE_LIMIT_GENERAL_RPS", 50)
	viper.SetDefault("RATE_LIMIT_GENERAL_BURST", 100)
	viper.SetDefault("MQTT_STATUS_TOPIC", "fleet/equipment/+/status")
	viper.SetDefault("MQTT_QOS", 1)
	viper.SetDefault("MQTT_KEEPALIVE_SEC", 30)
	viper.SetDefault("MQTT_CONNECT_TIMEOUT_SEC", 10)
	viper.SetDefault("MQTT_WORKER_COUNT", 4)
	viper.SetDefault("MQTT_BUFFER_SIZE", 256)

	config := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Admin: AdminConfig{
			Username:     viper.GetString("ADMIN_USERNAME"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
		MQTT: MQTTConfig{
			Broker:         viper.GetString("MQTT_BROKER"),
			ClientID:       viper.GetString("MQTT_CLIENT_ID"),
			Username:       viper.GetString("MQTT_USERNAME"),
			Password:       viper.GetString("MQTT_PASSWORD"),
			StatusTopic:    viper.GetString("MQTT_STATUS_TOPIC"),
			QoS:            viper.GetInt("MQTT_QOS"),
			KeepAlive:      viper.GetInt("MQTT_KEEPALIVE_SEC"),
			ConnectTimeout: viper.GetInt("MQTT_CONNECT_TIMEOUT_SEC"),
			WorkerCount:    viper.GetInt("MQTT_WORKER_COUNT"),
			BufferSize:     viper.GetInt("MQTT_BUFFER_SIZE"),
		},
		Demand: DemandConfig{
			DefaultRadiusKm: viper.GetFloat64("DEMAND_DEFAULT_RADIUS_KM"),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *JWTConfig) Expiry() time.Duration {
	hours := c.ExpiryHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
