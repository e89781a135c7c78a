package env

import (
	"strconv"

	"go.uber.org/zap"
)

// IntDefault reads env as an int, falling back to def when it is unset or not a number
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	raw := OrDefault(log, env, def)
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnw("config", "env", env, "value", raw, "ERROR", err)
		value, _ = strconv.Atoi(def)
	}
	return value
}
