// Package logging builds the zap logger shared by the service.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production JSON logger for format "json" and a development
// console logger otherwise.
func New(format string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch format {
	case "json", "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("excuse-service"), nil
}
