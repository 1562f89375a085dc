package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Notify    NotifyConfig    `yaml:"notify"`
	Mail      MailConfig      `yaml:"mail"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost"   validate:"required"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"        validate:"required,min=1,max=65535"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"    validate:"required"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"    validate:"required"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"courtbooker" validate:"required"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"          validate:"min=1"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"           validate:"min=1"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SchedulerConfig управляет фоновой чисткой записей интереса.
type SchedulerConfig struct {
	Interval  time.Duration `yaml:"interval"  env:"SCHEDULER_INTERVAL"  env-default:"1h"    validate:"required,gt=0"`
	Retention time.Duration `yaml:"retention" env:"SCHEDULER_RETENTION" env-default:"720h"  validate:"required,gt=0"`
}

type NotifyConfig struct {
	// Workers bounds parallel per-user dispatch inside one cancellation
	// cycle; 1 keeps the cycle fully sequential.
	Workers int `yaml:"workers" env:"NOTIFY_WORKERS" env-default:"1" validate:"min=1"`
	// RegistrationImpliesConsent treats the act of registering interest as
	// consent for every channel the user has a destination for, ignoring
	// the per-channel opt-in flags.
	RegistrationImpliesConsent bool `yaml:"registration_implies_consent" env:"NOTIFY_REGISTRATION_IMPLIES_CONSENT" env-default:"false"`
}

type MailConfig struct {
	SMTPHost string `yaml:"smtp_host" env:"MAIL_SMTP_HOST"`
	SMTPPort int    `yaml:"smtp_port" env:"MAIL_SMTP_PORT" env-default:"587"`
	User     string `yaml:"user"      env:"MAIL_SMTP_USER"`
	Password string `yaml:"password"  env:"MAIL_SMTP_PW"`
	From     string `yaml:"from"      env:"MAIL_FROM"      env-default:"no-reply@courtbooker.local"`
	FromName string `yaml:"from_name" env:"MAIL_FROM_NAME" env-default:"CourtBooker"`
}

type TwilioConfig struct {
	AccountSID          string        `yaml:"account_sid"           env:"TWILIO_ACCOUNT_SID"`
	AuthToken           string        `yaml:"auth_token"            env:"TWILIO_AUTH_TOKEN"`
	MessagingServiceSID string        `yaml:"messaging_service_sid" env:"TWILIO_MESSAGING_SERVICE_SID"`
	SMSFrom             string        `yaml:"sms_from"              env:"TWILIO_SMS_FROM"`
	WhatsAppFrom        string        `yaml:"whatsapp_from"         env:"TWILIO_WHATSAPP_FROM"`
	Timeout             time.Duration `yaml:"timeout"               env:"TWILIO_TIMEOUT" env-default:"5s" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
