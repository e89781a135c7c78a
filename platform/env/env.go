package env

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// OrDefault return the value of an env var, or def when the env var is empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value, ok := os.LookupEnv(env)
	if !ok || value == "" {
		log.Debugw("config", "env", env, "default", def)
		return def
	}
	return value
}

// Must return the value of an env var, terminating the process when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalw("config", "env", env, "ERROR", "required env var not set")
	}
	return value
}

// DurationDefault return the result of searching an env var, if the env var value is empty, return a default value as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	duration, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration: ", err)
	}
	return duration
}

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
	}
	return b
}

// ListDefault splits a comma separated env var, ignoring blank entries
func ListDefault(log *zap.SugaredLogger, env, def string) []string {
	var list []string
	for _, v := range strings.Split(OrDefault(log, env, def), ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
