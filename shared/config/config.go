package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Http        Http     `yaml:"http"`
	Log         Log      `yaml:"log"`
	Board       Board    `yaml:"board"`
	Media       Media    `yaml:"media"`
	CorsOrigins []string `yaml:"cors_origins"`
}

type Http struct {
	Port            int           `yaml:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// HTTPS enables HSTS, set it when the API is only reachable over TLS.
	HTTPS bool `yaml:"https"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Board struct {
	DefaultPageSize int `yaml:"default_page_size" validate:"required,min=1"`
	MaxPageSize     int `yaml:"max_page_size" validate:"required,gtefield=DefaultPageSize"`
}

const (
	MediaDriverLocal = "local"
	MediaDriverS3    = "s3"
)

type Media struct {
	// UploadPath is the public URL prefix of locally stored images, the
	// default image lives at UploadPath + "/defaultImage.png". The s3 driver
	// serves everything, the default image included, under PublicBaseURL.
	UploadPath   string `yaml:"upload_path" validate:"required"`
	Driver       string `yaml:"driver" validate:"required,oneof=local s3"`
	LocalRoot    string `yaml:"local_root" validate:"required_if=Driver local"`
	MaxImageSize int64  `yaml:"max_image_size" validate:"required,min=1"`
	S3           S3     `yaml:"s3"`
}

type S3 struct {
	Endpoint      string `yaml:"endpoint"`
	Bucket        string `yaml:"bucket"`
	UseSSL        bool   `yaml:"use_ssl"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type Private struct {
	Pg Pg            `yaml:"pg"`
	S3 S3Credentials `yaml:"s3"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type S3Credentials struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Public.Media.Driver == MediaDriverS3 {
		s3 := c.Public.Media.S3
		if s3.Endpoint == "" || s3.Bucket == "" || s3.PublicBaseURL == "" {
			return fmt.Errorf("media.s3 endpoint, bucket and public_base_url are required for s3 driver")
		}
	}
	return nil
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Http.ReadTimeout == 0 {
		c.Public.Http.ReadTimeout = 10 * time.Second
	}
	if c.Public.Http.WriteTimeout == 0 {
		c.Public.Http.WriteTimeout = 30 * time.Second
	}
	if c.Public.Http.ShutdownTimeout == 0 {
		c.Public.Http.ShutdownTimeout = 10 * time.Second
	}
	if c.Public.Log.Level == "" {
		c.Public.Log.Level = "info"
	}
}
