package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	API   API
	Chat  Chat
	Voice Voice
	Log   Log
}

type API struct {
	BaseURL string        `env:"CHATKIT_API_BASE_URL" env-default:"https://api.hearthlane.app"`
	Token   string        `env:"CHATKIT_API_TOKEN" env-required:"true"`
	Timeout time.Duration `env:"CHATKIT_API_TIMEOUT" env-default:"15s"`
}

type Chat struct {
	ConversationID string        `env:"CHATKIT_CONVERSATION_ID"`
	PollInterval   time.Duration `env:"CHATKIT_POLL_INTERVAL" env-default:"6s"`
	PageSize       int           `env:"CHATKIT_PAGE_SIZE" env-default:"30"`
}

type Voice struct {
	MinDuration time.Duration `env:"CHATKIT_VOICE_MIN_DURATION" env-default:"1s"`
	SamplePath  string        `env:"CHATKIT_VOICE_SAMPLE"`
}

type Log struct {
	Level string `env:"CHATKIT_LOG_LEVEL" env-default:"info"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatal("failed to read config: ", err)
	}
	return cfg
}
