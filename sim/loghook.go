package sim

import (
	"log"
)

// LogHookBase is embedded by hooks that write what they observe into a
// logger.
type LogHookBase struct {
	*log.Logger
}

// MakeLogHookBase returns a LogHookBase that writes into logger. A nil logger
// falls back to the standard logger.
func MakeLogHookBase(logger *log.Logger) LogHookBase {
	if logger == nil {
		logger = log.Default()
	}

	return LogHookBase{Logger: logger}
}
