package config

import (
	"os"
	"strconv"

	"portfolio_backend/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// postgres:// DSN или путь к локальному sqlite файлу
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Session struct {
		Secret string `yaml:"secret"`
	} `yaml:"session"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		NotifyEmail  string `yaml:"notify_email"`
	} `yaml:"email"`
}

var AppConfig *Config

// LoadConfig читает конфигурацию из переменных окружения (.env
// подхватывается автоматически). Если задан CONFIG_PATH, вместо
// окружения читается yaml файл.
func LoadConfig() {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			logger.Fatal("Failed to open config file", "path", configPath, "error", err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			logger.Fatal("Failed to parse config file", "path", configPath, "error", err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port = getEnvInt("SERVER_PORT", 5000)
	cfg.Server.Env = getEnv("SERVER_ENV", "development")

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Session.Secret = os.Getenv("SECRET_KEY")

	cfg.Admin.Email = getEnv("ADMIN_EMAIL", "admin@portfolio.local")
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "admin123")
	cfg.Admin.Name = getEnv("ADMIN_NAME", "Site Admin")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort = getEnvInt("SMTP_PORT", 587)
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
	cfg.Email.NotifyEmail = os.Getenv("NOTIFY_EMAIL")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.DSN == "" {
		// Локальный встроенный файл, как на dev-машине без базы
		cfg.Database.DSN = "portfolio.db"
	}
	if cfg.Session.Secret == "" {
		logger.Warn("SECRET_KEY is not set, using insecure development default")
		cfg.Session.Secret = "dev-secret-key-change-in-production"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	// Сид первого админа не должен получить пустые креды: yaml-конфиг
	// без блока admin получает те же дефолты, что и окружение
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@portfolio.local"
	}
	if cfg.Admin.Password == "" {
		logger.Warn("admin password is not set, using insecure development default")
		cfg.Admin.Password = "admin123"
	}
	if cfg.Admin.Name == "" {
		cfg.Admin.Name = "Site Admin"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
