package pixelterm

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pixelterm/internal/logs"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/runtime/session"
	"github.com/viant/pixelterm/service/event"
	"github.com/viant/pixelterm/service/journal"
)

type step struct {
	line     string
	expect   string
	contains string
}

func TestService_Execute(t *testing.T) {
	testCases := []struct {
		description string
		steps       []step
	}{
		{
			description: "fresh session is at root",
			steps:       []step{{line: "pwd", expect: "/"}},
		},
		{
			description: "created directory is listed",
			steps: []step{
				{line: "mkdir projects", expect: "Directory created: projects"},
				{line: "ls", contains: "projects/"},
			},
		},
		{
			description: "escape is denied and directory unchanged",
			steps: []step{
				{line: "cd ../../../etc", expect: "Access denied: ../../../etc is outside your home directory"},
				{line: "pwd", expect: "/"},
			},
		},
		{
			description: "parent of root stays at root",
			steps: []step{
				{line: "cd ..", contains: "Changed directory to: /"},
				{line: "cd ..", contains: "Changed directory to: /"},
				{line: "pwd", expect: "/"},
			},
		},
		{
			description: "theme signal",
			steps:       []step{{line: "color blue", expect: "__COLOR__::blue"}},
		},
		{
			description: "unknown game lists allowed ones",
			steps:       []step{{line: "game chess", expect: "Unknown game: chess\nAvailable games: snake, dino, memory, village"}},
		},
		{
			description: "unknown verb",
			steps:       []step{{line: "frobnicate", expect: "Command 'frobnicate' not found. Type 'help' for available commands."}},
		},
		{
			description: "text looking like a signal is escaped",
			steps:       []step{{line: "echo __CLEAR__", expect: `\__CLEAR__`}},
		},
		{
			description: "empty directory",
			steps: []step{
				{line: "mkdir empty", expect: "Directory created: empty"},
				{line: "cd empty", expect: "Changed directory to: /empty"},
				{line: "ls", expect: "Directory is empty"},
			},
		},
		{
			description: "rm distinguishes directories from missing files",
			steps: []step{
				{line: "mkdir docs", expect: "Directory created: docs"},
				{line: "rm docs", expect: "Cannot remove directory with rm: docs (use rmdir)"},
				{line: "rm ghost.txt", expect: "File not found: ghost.txt"},
			},
		},
		{
			description: "help lists groups",
			steps:       []step{{line: "help", contains: "[network]"}},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			srv, err := New()
			require.NoError(t, err)
			defer srv.Shutdown(context.Background())
			ctx := context.Background()
			sess, err := srv.Open(ctx, t.TempDir())
			require.NoError(t, err)
			for _, s := range testCase.steps {
				actual, err := srv.Execute(ctx, sess.ID(), s.line)
				require.NoError(t, err)
				if s.contains != "" {
					assert.Contains(t, actual, s.contains, s.line)
					continue
				}
				assert.Equal(t, s.expect, actual, s.line)
			}
		})
	}
}

func TestService_MediaPreview(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pictures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pictures", "cat.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))

	srv, err := New()
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()
	sess, err := srv.Open(ctx, root)
	require.NoError(t, err)

	actual, err := srv.Execute(ctx, sess.ID(), "cat pictures/cat.png")
	require.NoError(t, err)
	assert.Equal(t, "__IMAGE__::pictures/cat.png", actual)
	resp := response.Decode(actual)
	require.True(t, resp.IsSignal())
	assert.Equal(t, response.ImagePreview, resp.Signal.Kind)
}

func TestService_UnknownSession(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()

	_, err = srv.Execute(ctx, "missing", "pwd")
	assert.ErrorIs(t, err, ErrUnknownSession)
	_, err = srv.History(ctx, "missing")
	assert.ErrorIs(t, err, ErrUnknownSession)

	sess, err := srv.Open(ctx, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, srv.Close(ctx, sess.ID()))
	_, err = srv.Execute(ctx, sess.ID(), "pwd")
	assert.ErrorIs(t, err, ErrUnknownSession)
	assert.ErrorIs(t, srv.Close(ctx, sess.ID()), ErrUnknownSession)
}

func TestService_Open(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()

	_, err = srv.Open(ctx, "")
	assert.Error(t, err)
	_, err = srv.Open(ctx, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	alice, err := srv.Open(ctx, t.TempDir(), session.WithUser("alice"))
	require.NoError(t, err)
	_, err = srv.Open(ctx, t.TempDir(), session.WithUser("bob"))
	require.NoError(t, err)

	all, err := srv.Sessions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	onlyAlice, err := srv.Sessions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, onlyAlice, 1)
	assert.Equal(t, alice.ID(), onlyAlice[0].ID())

	actual, err := srv.Execute(ctx, alice.ID(), "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice", actual)
}

func TestService_HistoryAndStats(t *testing.T) {
	config := DefaultConfig()
	config.HistorySize = 3
	srv, err := New(WithConfig(config))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()
	sess, err := srv.Open(ctx, t.TempDir())
	require.NoError(t, err)

	for _, line := range []string{"pwd", "  ", "color red", "nope", "echo a", "ls"} {
		_, err = srv.Execute(ctx, sess.ID(), line)
		require.NoError(t, err)
	}
	history, err := srv.History(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"nope", "echo a", "ls"}, history)

	stats, err := srv.Stats(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Executed)
	assert.Equal(t, 1, stats.Signals)
	assert.Equal(t, 1, stats.Unknown)
}

func TestService_Policy(t *testing.T) {
	config := DefaultConfig()
	config.Policy = &policy.Config{Mode: policy.ModeAuto, BlockList: []string{"rm", "curl"}}
	srv, err := New(WithConfig(config))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()
	sess, err := srv.Open(ctx, t.TempDir())
	require.NoError(t, err)

	actual, err := srv.Execute(ctx, sess.ID(), "rm notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "Command 'rm' is not allowed", actual)

	actual, err = srv.Execute(ctx, sess.ID(), "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/", actual)
}

func TestService_Ask(t *testing.T) {
	config := DefaultConfig()
	config.Policy = &policy.Config{Mode: policy.ModeAsk, AskVerbs: []string{"rmdir"}}
	var asked []string
	srv, err := New(WithConfig(config), WithAsk(func(ctx context.Context, verb, argument string, p *policy.Policy) bool {
		asked = append(asked, verb+" "+argument)
		return false
	}))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()
	sess, err := srv.Open(ctx, t.TempDir())
	require.NoError(t, err)

	actual, _ := srv.Execute(ctx, sess.ID(), "mkdir keep")
	assert.Equal(t, "Directory created: keep", actual)
	actual, _ = srv.Execute(ctx, sess.ID(), "rmdir keep")
	assert.Equal(t, "Command 'rmdir' was not approved", actual)
	assert.Equal(t, []string{"rmdir keep"}, asked)
}

type slowService struct{}

func (s *slowService) Name() string { return "slow" }

func (s *slowService) Methods() types.Signatures {
	return types.Signatures{{Name: "sleep", Usage: "sleep", Description: "Waits for the deadline"}}
}

func (s *slowService) Method(verb string) (types.Executable, error) {
	if verb != "sleep" {
		return nil, types.NewUnknownCommandError(verb)
	}
	return func(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		return response.Text("woke up")
	}, nil
}

func TestService_Timeout(t *testing.T) {
	config := DefaultConfig()
	config.CommandTimeout = 30 * time.Millisecond
	srv, err := New(WithConfig(config), WithExtensionServices(&slowService{}))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	ctx := context.Background()
	sess, err := srv.Open(ctx, t.TempDir())
	require.NoError(t, err)

	actual, err := srv.Execute(ctx, sess.ID(), "sleep")
	require.NoError(t, err)
	assert.Equal(t, "Command timed out after 30ms", actual)

	// waits for the late handler instead of racing it
	actual, err = srv.Execute(ctx, sess.ID(), "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/", actual)
}

func TestService_DuplicateVerb(t *testing.T) {
	_, err := New(WithExtensionServices(&duplicateService{}))
	assert.ErrorIs(t, err, types.ErrDuplicateVerb)
}

type duplicateService struct{ slowService }

func (s *duplicateService) Methods() types.Signatures {
	return types.Signatures{{Name: "ls"}}
}

func TestService_Journal(t *testing.T) {
	events := event.New()
	defer events.Close()
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()
	event.SetListenerOf[*types.Record](events, j.Handle)

	srv, err := New(WithEventService(events))
	require.NoError(t, err)
	ctx := context.Background()
	sess, err := srv.Open(ctx, t.TempDir())
	require.NoError(t, err)
	for _, line := range []string{"pwd", "mkdir a", "color green"} {
		_, err = srv.Execute(ctx, sess.ID(), line)
		require.NoError(t, err)
	}
	require.NoError(t, srv.Close(ctx, sess.ID()))

	var records []*types.Record
	assert.Eventually(t, func() bool {
		records, err = j.List(sess.ID(), 0)
		return err == nil && len(records) == 5
	}, time.Second, 10*time.Millisecond)
	var outcomes []string
	for _, record := range records {
		outcomes = append(outcomes, strings.TrimSpace(record.Line+" "+record.Outcome))
	}
	assert.Equal(t, []string{"opened", "pwd text", "mkdir a text", "color green signal:color", "closed"}, outcomes)
}

func TestService_DirectoryChangeLogged(t *testing.T) {
	testCases := []struct {
		description string
		lines       []string
		contains    []string
		notContains []string
	}{
		{
			description: "cd into and out of a directory",
			lines:       []string{"mkdir docs", "cd docs", "cd .."},
			contains:    []string{"directory changed", "from=/ to=/docs", "from=/docs to=/"},
		},
		{
			description: "denied cd leaves no trace",
			lines:       []string{"cd ../../etc"},
			notContains: []string{"directory changed"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			logger, _, err := logs.New(&logs.Config{Level: "debug"}, buffer)
			require.NoError(t, err)
			srv, err := New(WithLogger(logger))
			require.NoError(t, err)
			defer srv.Shutdown(context.Background())
			ctx := context.Background()
			sess, err := srv.Open(ctx, t.TempDir())
			require.NoError(t, err)
			for _, line := range testCase.lines {
				_, err = srv.Execute(ctx, sess.ID(), line)
				require.NoError(t, err)
			}
			for _, fragment := range testCase.contains {
				assert.Contains(t, buffer.String(), fragment)
			}
			for _, fragment := range testCase.notContains {
				assert.NotContains(t, buffer.String(), fragment)
			}
		})
	}
}
