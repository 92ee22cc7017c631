package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
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

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// MailConfig holds the Resend API settings used for the admin
// notification email sent after each new booking.
type MailConfig struct {
	APIKey     string
	APIBaseURL string
	FromName   string
	FromEmail  string
	AdminEmail string
	Timeout    time.Duration
}

// RateLimitConfig throttles the unauthenticated booking lookup endpoint.
type RateLimitConfig struct {
	LookupRPS   float64
	LookupBurst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	mailTimeout, err := time.ParseDuration(viper.GetString("MAIL_TIMEOUT"))
	if err != nil {
		mailTimeout = 10 * time.Second
	}

	mailBaseURL := viper.GetString("MAIL_API_BASE_URL")
	if mailBaseURL == "" {
		mailBaseURL = "https://api.resend.com"
	}

	lookupRPS := viper.GetFloat64("LOOKUP_RATE_RPS")
	if lookupRPS <= 0 {
		lookupRPS = 1
	}

	lookupBurst := viper.GetInt("LOOKUP_RATE_BURST")
	if lookupBurst <= 0 {
		lookupBurst = 5
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
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Mail: MailConfig{
			APIKey:     viper.GetString("MAIL_API_KEY"),
			APIBaseURL: mailBaseURL,
			FromName:   viper.GetString("MAIL_FROM_NAME"),
			FromEmail:  viper.GetString("MAIL_FROM_EMAIL"),
			AdminEmail: viper.GetString("MAIL_ADMIN_EMAIL"),
			Timeout:    mailTimeout,
		},
		RateLimit: RateLimitConfig{
			LookupRPS:   lookupRPS,
			LookupBurst: lookupBurst,
		},
	}

	return config, nil
}
