package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/dolist/internal/core/styles"
)

// Validate checks that the configuration is valid. Field problems are
// returned as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("output_path", c.OutputPath, notBlank),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("origin.row", c.Origin.Row, nonNegative),
		criterio.Run("origin.col", c.Origin.Col, nonNegative),
		c.validateKeys(),
	)
}

// validateKeys requires every action to have a key and no key to trigger
// two different actions.
func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)

	for _, b := range c.Keys.Bindings() {
		field := "keys." + b.Action
		if len(b.Keys) == 0 {
			errs = errs.Append(field, fmt.Errorf("at least one key is required"))
			continue
		}

		for i, k := range b.Keys {
			if strings.TrimSpace(k) == "" {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("key cannot be empty"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.Action {
				errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("key %q already bound to %s", k, prev))
				continue
			}
			owner[k] = b.Action
		}
	}

	return errs.ToError()
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
