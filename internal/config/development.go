package config

import (
	"os"
	"strings"
)

// Development is on when DEVELOPMENT is set to anything but "", "0" or
// "false".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(development)) {
	case "", "0", "false":
		return false
	}
	return true
}
