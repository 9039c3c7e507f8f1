package config

import (
	"fmt"
	"time"

	"github.com/Finz-2025/finz-coach/internal/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.AccessToken, validation.Required),
		validation.Field(&c.AccessTokenHeader, validation.Required),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.UserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.DisplayOffset, validation.Min(-14*time.Hour), validation.Max(14*time.Hour)),
		validation.Field(&c.ProfileDB, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return nil
}
