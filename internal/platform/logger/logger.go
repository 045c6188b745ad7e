// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a development logger for mode "dev" and a production logger
// otherwise.
func New(mode string) (*zap.Logger, error) {
	if mode == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
