package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DataSource selects the client data backend at process start.
const (
	DataSourceSheets = "sheets"
	DataSourceMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,        default=8080"`
	Env      string `env:"ENV,         default=development"`
	LogLevel string `env:"LOG_LEVEL,   default=info"`

	// BotToken is the shared HMAC key material for init-data validation and
	// the credential for outgoing bot messages. Auth fails closed without it.
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`

	// AdminChatID is the Telegram user id granted the admin role. Without it
	// no identity ever resolves to admin.
	AdminChatID string `env:"ADMIN_CHAT_ID"`

	// WebAppURL is the Mini App link the bot hands out.
	WebAppURL string `env:"WEBAPP_URL"`

	DataSource string `env:"DATA_SOURCE, default=sheets"`

	Sheets SheetsConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type SheetsConfig struct {
	// ScriptURL is the deployed Google Apps Script endpoint.
	ScriptURL     string `env:"SHEETS_SCRIPT_URL"`
	ClientSheet   string `env:"SHEETS_CLIENT_SHEET,   default=WebBase"`
	ArchiveSheet  string `env:"SHEETS_ARCHIVE_SHEET,  default=Archive"`
	TemplateSheet string `env:"SHEETS_TEMPLATE_SHEET, default=Templates"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cabinet"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate rejects combinations the process cannot run with. The bot token
// and admin id are deliberately not required here: their absence degrades to
// fail-closed auth rather than preventing startup.
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceSheets:
		if c.Sheets.ScriptURL == "" {
			return fmt.Errorf("config: SHEETS_SCRIPT_URL is required when DATA_SOURCE=%s", DataSourceSheets)
		}
	case DataSourceMongo:
	default:
		return fmt.Errorf("config: unknown DATA_SOURCE %q", c.DataSource)
	}
	return nil
}
