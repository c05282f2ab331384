package util

import (
	"go.uber.org/zap"
)

// NewLogger returns a human-readable logger in development and a JSON
// production logger otherwise.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
