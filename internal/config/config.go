package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "TODO"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"

	RelayNone      = "none"
	RelayGoChannel = "gochannel"
	RelayRedis     = "redis"
	RelayKafka     = "kafka"
)

// Config reúne toda a configuração da aplicação.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Events        EventsConfig        `mapstructure:"events"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	RelayConsumer RelayConsumerConfig `mapstructure:"relay_consumer"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=debug info warn error"`
	AppName string `mapstructure:"app_name" validate:"required"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory postgres"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
}

type EventsConfig struct {
	// Relay escolhe para onde os eventos de domínio são repassados além dos manipuladores locais.
	Relay            string        `mapstructure:"relay" validate:"oneof=none gochannel redis kafka"`
	GoChannelBuffer  int64         `mapstructure:"gochannel_buffer" validate:"gte=0"`
	SlowCommandLimit time.Duration `mapstructure:"slow_command_limit" validate:"gt=0"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" validate:"min=1,dive,required"`
}

// RelayConsumerConfig identifica o consumidor fora do processo; Group vale para redis e kafka.
type RelayConsumerConfig struct {
	Name  string `mapstructure:"name" validate:"required"`
	Group string `mapstructure:"group" validate:"required"`
}

func (c EventsConfig) RelayEnabled() bool {
	return c.Relay != RelayNone
}

// Load lê a configuração do arquivo YAML opcional em path e das variáveis de
// ambiente TODO_*. As variáveis de ambiente prevalecem sobre o arquivo.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.app_name", "go-todo")

	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.dsn", "")

	v.SetDefault("events.relay", RelayNone)
	v.SetDefault("events.gochannel_buffer", 64)
	v.SetDefault("events.slow_command_limit", 500*time.Millisecond)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})

	v.SetDefault("relay_consumer.name", "todo-relay-consumer")
	v.SetDefault("relay_consumer.group", "todo_relay_consumer")
}

// Validate verifica as tags da struct e reporta todos os campos inválidos.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}

		msgs := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}
