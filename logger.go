package stocks

import "go.uber.org/zap"

var l = zap.NewNop()

// SetLogger sets the logger used by the package. The package is silent by default.
func SetLogger(logger *zap.Logger) {
	l = logger
}
