package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyReportOutputFormat = "report.output_format"
	KeyReportFileName     = "report.file_name"
	KeyServePort          = "serve.port"
	KeyServeMaxUploadMB   = "serve.max_upload_mb"
	KeyServeOpenBrowser   = "serve.open_browser"
	KeyLogLevel           = "log.level"
)

type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Serve  ServeConfig  `mapstructure:"serve"`
	Log    LogConfig    `mapstructure:"log"`
}

type ReportConfig struct {
	OutputFormat string `mapstructure:"output_format" validate:"omitempty,oneof=csv excel xlsx"`
	FileName     string `mapstructure:"file_name" validate:"required,excludesall=/\\"`
}

type ServeConfig struct {
	Port        int  `mapstructure:"port" validate:"min=1,max=65535"`
	MaxUploadMB int  `mapstructure:"max_upload_mb" validate:"min=1,max=512"`
	OpenBrowser bool `mapstructure:"open_browser"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// MaxUploadBytes is the multipart limit for the web upload form.
func (c ServeConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	local := viper.New()
	setDefaults(local)
	cfg, err := loadAndValidateFromViper(local)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return *cfg
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# timecard configuration
report:
  # csv or excel
  output_format: "csv"
  file_name: "timecard_report"

serve:
  port: 8080
  max_upload_mb: 32
  open_browser: true

log:
  # debug, info, warn or error
  level: "info"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Report.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.Report.OutputFormat))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyReportOutputFormat, "csv")
	v.SetDefault(KeyReportFileName, "timecard_report")
	v.SetDefault(KeyServePort, 8080)
	v.SetDefault(KeyServeMaxUploadMB, 32)
	v.SetDefault(KeyServeOpenBrowser, true)
	v.SetDefault(KeyLogLevel, "info")
}
