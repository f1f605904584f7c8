package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type StorageDriver string

const (
	StoragePostgres StorageDriver = "postgres"
	StorageMemory   StorageDriver = "memory"
)

// Circulation holds the lending rules.
type Circulation struct {
	LoanPeriod     time.Duration `yaml:"loanPeriod" envconfig:"LOAN_PERIOD" default:"336h"`
	ReservationTTL time.Duration `yaml:"reservationTTL" envconfig:"RESERVATION_TTL" default:"168h"`
	PickupWindow   time.Duration `yaml:"pickupWindow" envconfig:"PICKUP_WINDOW" default:"72h"`
}

func DefaultCirculation() Circulation {
	return Circulation{
		LoanPeriod:     14 * 24 * time.Hour,
		ReservationTTL: 7 * 24 * time.Hour,
		PickupWindow:   3 * 24 * time.Hour,
	}
}

type Config struct {
	Server        HTTPServer    `yaml:"server"`
	StorageDriver StorageDriver `yaml:"storage" envconfig:"STORAGE_DRIVER"`
	Database      postgres.DB   `yaml:"db"`
	Kafka         kafka.Config  `yaml:"kafka"`
	Circulation   Circulation   `yaml:"circulation"`
	Log           logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Server.WriteTimeout == 0 {
			config.Server.WriteTimeout = 10 * time.Second
		}
		if config.StorageDriver == "" {
			config.StorageDriver = StoragePostgres
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	c := *cfg
	c.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(c, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
