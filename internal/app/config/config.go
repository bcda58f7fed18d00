package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Duffel   Duffel     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"PORT" validate:"min=1,max=65535"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Duffel holds the travel-booking provider configuration.
type Duffel struct {
	APIToken   string        `mapstructure:"DUFFEL_API_TOKEN" validate:"required"`
	BaseURL    string        `mapstructure:"DUFFEL_BASE_URL" validate:"required,url"`
	APIVersion string        `mapstructure:"DUFFEL_API_VERSION" validate:"required"`
	Timeout    time.Duration `mapstructure:"DUFFEL_TIMEOUT" validate:"gte=0"`
}

// LogValue keeps the bearer token out of logs.
func (d Duffel) LogValue() slog.Value {
	token := ""
	if d.APIToken != "" {
		token = "[REDACTED]"
	}

	return slog.GroupValue(
		slog.String("api_token", token),
		slog.String("base_url", d.BaseURL),
		slog.String("api_version", d.APIVersion),
		slog.Duration("timeout", d.Timeout),
	)
}

// Validate reports every missing or malformed setting. A missing credential
// is a fatal configuration error.
func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() == "required" {
			messages = append(messages, fmt.Sprintf("%s environment variable must be set", fieldErr.Field()))
			continue
		}

		messages = append(messages, fmt.Sprintf("%s has invalid value %v", fieldErr.Field(), fieldErr.Value()))
	}

	return errors.New(strings.Join(messages, "; "))
}
