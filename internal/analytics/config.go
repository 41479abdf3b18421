package analytics

import (
	"os"

	"gopkg.in/yaml.v3"

	"gomarketplace/internal/app"
)

const (
	DefaultGroupID    = "cart-analytics-group"
	DefaultServerPort = ":8082"
)

type Config struct {
	CfgDB        app.ConfigDB    `yaml:"db"`
	CfgKafka     app.ConfigKafka `yaml:"kafka"`
	GroupID      string          `yaml:"group_id"`
	MaxOpenConns int             `yaml:"max_open_conns"`
	ServerPort   string          `yaml:"srv_port"`
}

func NewConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.GroupID == "" {
		cfg.GroupID = DefaultGroupID
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = DefaultServerPort
	}
	if cfg.CfgKafka.Topic == "" {
		cfg.CfgKafka.Topic = app.DefaultKafkaTopic
	}

	return &cfg, nil
}
