package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"toolbox/core/config"
	"toolbox/core/logger"

	"go.uber.org/zap"
)

// field is one labelled line of console output.
type field struct {
	label string
	value string
}

// render prints v as indented JSON when asJSON is set, otherwise the labelled fields.
func render(w io.Writer, asJSON bool, v any, title string, fields ...field) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	fmt.Fprintf(w, "\n--- %s ---\n", title)
	for _, f := range fields {
		fmt.Fprintf(w, "%-10s %s\n", f.label+":", f.value)
	}
	return nil
}

// loadRuntime loads configuration and builds the logger for commands that reach the host.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}
