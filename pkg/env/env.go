package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"testing"

	"github.com/joho/godotenv"
)

var dotEnvMap map[string]string

func init() {
	var err error
	dotEnvMap, err = godotenv.Read(".env")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		dotEnvMap = map[string]string{}
	}
}

func getEnv(key string) string {
	// .env
	value := dotEnvMap[key]
	// os.Getenv
	if v := os.Getenv(key); v != "" {
		value = v
	}
	return value
}

func Default(key, def string) string {
	value := getEnv(key)
	if value == "" {
		return def
	}
	return value
}

func DefaultInt(key string, def int) int {
	value := getEnv(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Sprintf("`%s` is not an integer: %v", key, err))
	}
	return n
}

func DefaultBool(key string, def bool) bool {
	value := getEnv(key)
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(fmt.Sprintf("`%s` is not a boolean: %v", key, err))
	}
	return b
}

// DefaultDuration accepts Go duration strings ("10s", "1500ms").
func DefaultDuration(key string, def time.Duration) time.Duration {
	value := getEnv(key)
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(fmt.Sprintf("`%s` is not a duration: %v", key, err))
	}
	return d
}

func RequiredNotEmpty(key string) string {
	value := getEnv(key)
	if value == "" {
		if !testing.Testing() {
			panic(fmt.Sprintf("`%s` is not set or is empty", key))
		}
	}
	return value
}

func Required(key string) string {
	_, osSet := os.LookupEnv(key)
	_, dotEnvSet := dotEnvMap[key]
	if !osSet && !dotEnvSet {
		if !testing.Testing() {
			panic(fmt.Sprintf("`%s` is not set", key))
		}
	}
	return getEnv(key)
}
