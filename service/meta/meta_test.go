package meta

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	env := map[string]string{"FOO": "bar", "A": "1", "B": "2"}
	lookup := func(name string) string { return env[name] }
	testCases := []struct {
		description string
		input       string
		expect      string
	}{
		{description: "no expressions", input: "just a plain string", expect: "just a plain string"},
		{description: "single expression", input: "value is ${env.FOO}", expect: "value is bar"},
		{description: "multiple expressions", input: "${env.A}-${env.B}-${env.A}", expect: "1-2-1"},
		{description: "unset variable", input: "unset=${env.NOTSET}-end", expect: "unset=-end"},
		{description: "missing closing brace", input: "start ${env.FOO and more", expect: "start ${env.FOO and more"},
		{description: "invalid name kept", input: "x ${env.a-b} y", expect: "x ${env.a-b} y"},
		{description: "empty name", input: "oops ${env.} done", expect: "oops  done"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, expandEnv(testCase.input, lookup))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("PIXELTERM_TEST_ROOT", "/srv/home")
	location := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(location, []byte("rootDir: ${env.PIXELTERM_TEST_ROOT}\nhistorySize: 10\n"), 0o644))

	type config struct {
		RootDir     string `yaml:"rootDir"`
		HistorySize int    `yaml:"historySize"`
		User        string `yaml:"user"`
	}
	actual := &config{User: "guest", HistorySize: 100}
	require.NoError(t, Load(context.Background(), nil, location, actual))
	assert.Equal(t, &config{RootDir: "/srv/home", HistorySize: 10, User: "guest"}, actual)

	err := Load(context.Background(), nil, filepath.Join(t.TempDir(), "missing.yaml"), actual)
	assert.Error(t, err)
}
