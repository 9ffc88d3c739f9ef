package common

import (
	"os"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName               *string `yaml:"appName" validate:"required"`
	WebListen             *string `yaml:"webListen" validate:"required"`
	JwtSecret             *string `yaml:"jwtSecret"`
	Store                 *string `yaml:"store" validate:"required,oneof=memory postgres object"`
	PostgresDsn           *string `yaml:"postgresDsn"`
	MinioEndpoint         *string `yaml:"minioEndpoint"`
	MinioAccessKey        *string `yaml:"minioAccessKey"`
	MinioSecretKey        *string `yaml:"minioSecretKey"`
	MinioBucket           *string `yaml:"minioBucket"`
	TelemetryUrl          *string `yaml:"telemetryUrl"`
	TelemetryOrganization *string `yaml:"telemetryOrganization"`
}

func NewConfig() *Config {
	// * parse arguments
	path := os.Getenv("GROVE_CONFIG_PATH")
	if path == "" {
		path = ".local/config.yml"
	}

	// * declare struct
	config := new(Config)

	// * read config
	yml, err := os.ReadFile(path)
	if err != nil {
		gut.Fatal("unable to read configuration file", err)
	}

	// * parse config
	if err := yaml.Unmarshal(yml, config); err != nil {
		gut.Fatal("unable to parse configuration file", err)
	}

	// * validate config
	if err := gut.Validate(config); err != nil {
		gut.Fatal("invalid configuration", err)
	}

	return config
}
