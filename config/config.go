// Package config loads runtime settings from .env, the environment and
// command-line flags.
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"port"`
	MongoURL       string        `mapstructure:"mongo_url"`
	MongoDatabase  string        `mapstructure:"mongo_database"`
	Mode           string        `mapstructure:"mode"`
	FrontendURL    string        `mapstructure:"frontend_url"`
	PublicURL      string        `mapstructure:"public_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	RequireAuth bool          `mapstructure:"require_auth"`
	CORSOrigins []string      `mapstructure:"cors_origins"`

	MailProvider        string `mapstructure:"mail_provider"`
	SendGridAPIKey      string `mapstructure:"sendgrid_api_key"`
	PostmarkServerToken string `mapstructure:"postmark_server_token"`
	EmailSender         string `mapstructure:"email_sender"`

	ImageStore  string `mapstructure:"image_store"`
	UploadDir   string `mapstructure:"upload_dir"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Region    string `mapstructure:"s3_region"`
	S3PublicURL string `mapstructure:"s3_public_url"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisUsername string `mapstructure:"redis_username"`
	RedisPassword string `mapstructure:"redis_password"`

	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaTopic   string   `mapstructure:"kafka_topic"`
}

var defaults = map[string]any{
	"port":                  "5000",
	"mongo_url":             "mongodb://localhost:27017",
	"mongo_database":        "wholesale",
	"mode":                  "development",
	"frontend_url":          "http://localhost:3000",
	"public_url":            "http://localhost:5000",
	"request_timeout":       "10s",
	"jwt_secret":            "",
	"token_ttl":             "24h",
	"require_auth":          false,
	"cors_origins":          "*",
	"mail_provider":         "log",
	"sendgrid_api_key":      "",
	"postmark_server_token": "",
	"email_sender":          "",
	"image_store":           "local",
	"upload_dir":            "uploads",
	"s3_bucket":             "",
	"s3_region":             "",
	"s3_public_url":         "",
	"redis_addr":            "",
	"redis_username":        "",
	"redis_password":        "",
	"kafka_brokers":         "",
	"kafka_topic":           "wholesale.orders",
}

// Load reads .env if present, then the environment, then any flags already
// bound to v.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}
	cfg.CORSOrigins = compact(cfg.CORSOrigins)
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)

	return &cfg, cfg.Validate()
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var problems []error
	if c.MongoURL == "" {
		problems = append(problems, errors.New("MONGO_URL is required"))
	}
	if c.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}
	switch c.MailProvider {
	case "log":
	case "sendgrid":
		if c.SendGridAPIKey == "" {
			problems = append(problems, errors.New("SENDGRID_API_KEY is required for the sendgrid mail provider"))
		}
	case "postmark":
		if c.PostmarkServerToken == "" {
			problems = append(problems, errors.New("POSTMARK_SERVER_TOKEN is required for the postmark mail provider"))
		}
	default:
		problems = append(problems, errors.New("MAIL_PROVIDER must be sendgrid, postmark or log"))
	}
	switch c.ImageStore {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			problems = append(problems, errors.New("S3_BUCKET is required for the s3 image store"))
		}
	default:
		problems = append(problems, errors.New("IMAGE_STORE must be local or s3"))
	}
	return errors.Join(problems...)
}

// Production reports whether MODE=production.
func (c *Config) Production() bool {
	return c.Mode == "production"
}

func compact(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
