package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	IsDebug *bool `yaml:"is_debug" env:"IS_DEBUG" env-default:"false"`
	Emip    struct {
		Endpoint        string        `yaml:"endpoint" env:"EMIP_ENDPOINT"`
		PartnerId       string        `yaml:"partner_id" env:"EMIP_PARTNER_ID"`
		OperatorId      string        `yaml:"operator_id" env:"EMIP_OPERATOR_ID"`
		RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"45s"`
		MaxRetries      int           `yaml:"max_retries" env-default:"3"`
		HeartbeatPeriod time.Duration `yaml:"heartbeat_period" env-default:"5m"`
		AllowedPrefixes []string      `yaml:"allowed_prefixes"`
	} `yaml:"emip"`
	Listen struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		BindIP   string `yaml:"bind_ip" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env-default:"5000"`
		TLS      bool   `yaml:"tls_enabled" env-default:"false"`
		CertFile string `yaml:"cert_file" env-default:""`
		KeyFile  string `yaml:"key_file" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"localhost"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:""`
		Password string `yaml:"password" env-default:""`
		Database string `yaml:"database" env-default:"emip"`
	} `yaml:"mongo"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY"`
		ChatId  int64  `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" env-default:"false"`
		BindIP  string `yaml:"bind_ip" env-default:"0.0.0.0"`
		Port    string `yaml:"port" env-default:"9100"`
	} `yaml:"metrics"`
}

var instance *Config
var once sync.Once

func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		log.Println("reading config")
		_ = godotenv.Load()
		instance = &Config{}
		if err = cleanenv.ReadConfig("config.yml", instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			log.Println(desc)
			log.Println(err)
			instance = nil
		}
	})
	return instance, err
}
