package blockmodel

import "go.uber.org/zap"

// Soft failures (missing parents, reference loops) are logged rather
// than returned. The package stays silent until a logger is installed.
var log = zap.NewNop()

// SetLogger installs the logger used for soft-failure warnings.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}
