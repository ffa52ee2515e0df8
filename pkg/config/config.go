package config

import (
	"errors"
	"log"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// Settings holds the non-secret run parameters kept next to the binary.
// Secrets (client id/secret, access token, database credentials) stay in
// the environment.
type Settings struct {
	ClubID           int64    `json:"club_id" validate:"required"`
	Timezone         string   `json:"timezone" validate:"required"`
	ThresholdMinutes int      `json:"threshold_minutes" validate:"min=1"`
	PageSize         int      `json:"page_size" validate:"min=1,max=200"`
	MaxRecords       int      `json:"max_records" validate:"min=1"`
	ReportDir        string   `json:"report_dir" validate:"required"`
	AuthScopes       []string `json:"auth_scopes" validate:"min=1"`
	CallbackAddr     string   `json:"callback_addr" validate:"required"`
}

func LoadSettings(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading settings file error: " + err.Error())
	}
	var settings Settings
	if err := sonic.Unmarshal(raw, &settings); err != nil {
		return nil, errors.New("parsing settings file error: " + err.Error())
	}
	if err := validator.New().Struct(settings); err != nil {
		return nil, errors.New("settings validation error: " + err.Error())
	}
	return &settings, nil
}
