package meta

import (
	"os"
	"strings"
)

const envPrefix = "${env."

// ExpandEnv replaces ${env.NAME} with the value of the NAME environment
// variable; unset variables expand to "". Expressions with an invalid name or
// without a closing brace are left untouched.
func ExpandEnv(value string) string {
	return expandEnv(value, os.Getenv)
}

func expandEnv(value string, lookup func(string) string) string {
	if !strings.Contains(value, envPrefix) {
		return value
	}
	var b strings.Builder
	for {
		start := strings.Index(value, envPrefix)
		if start < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:start])
		rest := value[start+len(envPrefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[start:])
			return b.String()
		}
		name := rest[:end]
		if !isEnvName(name) {
			b.WriteString(envPrefix)
			value = rest
			continue
		}
		b.WriteString(lookup(name))
		value = rest[end+1:]
	}
}

func isEnvName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		return false
	}
	return true
}
