package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultStorageKey - ключ, под которым корзина хранится в хранилище
	DefaultStorageKey       = "@GoMarketplace"
	DefaultDriver           = "memory"
	DefaultWriteTimeout     = 5 * time.Second
	DefaultSubscriberBuffer = 16
	DefaultServerPort       = ":8080"
	DefaultKafkaTopic       = "cart-events"
)

type Config struct {
	CfgStorage       ConfigStorage `yaml:"storage"`
	CfgKafka         ConfigKafka   `yaml:"kafka"`
	DeviceID         string        `yaml:"device_id"`
	ServerPort       string        `yaml:"srv_port"`
	SubscriberBuffer int           `yaml:"subscriber_buffer"`
}

// ConfigStorage - настройки хранилища корзины
type ConfigStorage struct {
	Driver       string        `yaml:"driver"` // redis | postgres | memory
	Key          string        `yaml:"key"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	ResetOnStart bool          `yaml:"reset_on_start"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	CfgRedis     ConfigRedis   `yaml:"redis"`
	CfgDB        ConfigDB      `yaml:"db"`
}

type ConfigRedis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

// ConfigKafka - пустой список брокеров отключает отправку событий
type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	c.setDefaults()

	return &c, nil
}

func (c *Config) setDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = DefaultServerPort
	}
	if c.SubscriberBuffer <= 0 {
		c.SubscriberBuffer = DefaultSubscriberBuffer
	}
	if c.CfgStorage.Driver == "" {
		c.CfgStorage.Driver = DefaultDriver
	}
	if c.CfgStorage.Key == "" {
		c.CfgStorage.Key = DefaultStorageKey
	}
	if c.CfgStorage.WriteTimeout <= 0 {
		c.CfgStorage.WriteTimeout = DefaultWriteTimeout
	}
	if c.CfgKafka.Topic == "" {
		c.CfgKafka.Topic = DefaultKafkaTopic
	}
}

// DSN строка подключения к Postgres
func (c ConfigDB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.Login, c.Password, c.Database,
	)
}
