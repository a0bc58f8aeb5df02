package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/runtime/session"
	"github.com/viant/pixelterm/service/parser"
)

func newTerminal(t *testing.T, files map[string]string) *session.Session {
	root := t.TempDir()
	for name, content := range files {
		location := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(location, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0644))
	}
	term, err := session.New(root)
	require.NoError(t, err)
	return term
}

func run(t *testing.T, srv *Service, term *session.Session, line string) *response.Response {
	cmd := parser.Parse(line)
	method, err := srv.Method(cmd.Verb)
	require.NoError(t, err)
	return method(context.Background(), term, cmd)
}

func TestService_Commands(t *testing.T) {
	testCases := []struct {
		description string
		files       map[string]string
		commands    []string
		expectKind  response.ErrorKind
		expectType  response.Type
		contains    []string
		notContains []string
		expectText  string
	}{
		{
			description: "pwd at root",
			commands:    []string{"pwd"},
			expectText:  "/",
		},
		{
			description: "ls empty",
			commands:    []string{"ls"},
			expectText:  "Directory is empty",
		},
		{
			description: "mkdir then ls",
			commands:    []string{"mkdir projects", "ls"},
			contains:    []string{"📁 projects/", " -  "},
		},
		{
			description: "ls sorted case sensitive",
			files:       map[string]string{"b.txt": "b", "A.txt": "a", "a.txt": "aa"},
			commands:    []string{"dir"},
			contains:    []string{"A.txt", "a.txt", "b.txt"},
		},
		{
			description: "ls missing",
			commands:    []string{"ls nowhere"},
			expectKind:  response.KindNotFound,
			expectText:  "Directory not found: nowhere",
		},
		{
			description: "ls file",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"ls a.txt"},
			expectKind:  response.KindNotADirectory,
		},
		{
			description: "ls outside",
			commands:    []string{"ls ../../.."},
			expectKind:  response.KindAccessDenied,
		},
		{
			description: "cd and pwd",
			files:       map[string]string{"documents/": ""},
			commands:    []string{"cd documents", "pwd"},
			expectText:  "/documents",
		},
		{
			description: "cd reports virtual path",
			files:       map[string]string{"documents/work/": ""},
			commands:    []string{"cd documents/work"},
			expectText:  "Changed directory to: /documents/work",
		},
		{
			description: "cd escape keeps directory",
			files:       map[string]string{"documents/": ""},
			commands:    []string{"cd documents", "cd ../../../etc", "pwd"},
			expectText:  "/documents",
		},
		{
			description: "cd .. at root",
			commands:    []string{"cd ..", "cd ..", "pwd"},
			expectText:  "/",
		},
		{
			description: "cd without argument goes home",
			files:       map[string]string{"a/b/": ""},
			commands:    []string{"cd a/b", "cd", "pwd"},
			expectText:  "/",
		},
		{
			description: "cd tilde path",
			files:       map[string]string{"a/b/": ""},
			commands:    []string{"cd a", "cd ~/a/b", "pwd"},
			expectText:  "/a/b",
		},
		{
			description: "cd file",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"cd a.txt"},
			expectKind:  response.KindNotADirectory,
		},
		{
			description: "mkdir usage",
			commands:    []string{"mkdir"},
			expectKind:  response.KindInvalidArgument,
			contains:    []string{"Usage: mkdir"},
		},
		{
			description: "mkdir idempotent",
			commands:    []string{"mkdir x", "mkdir x"},
			expectText:  "Directory already exists: x",
		},
		{
			description: "mkdir over file",
			files:       map[string]string{"x": "data"},
			commands:    []string{"mkdir x"},
			expectKind:  response.KindNotADirectory,
		},
		{
			description: "rmdir non empty",
			files:       map[string]string{"d/f.txt": "x"},
			commands:    []string{"rmdir d"},
			expectKind:  response.KindUnsupportedOperation,
			contains:    []string{"/d"},
		},
		{
			description: "rmdir empty",
			files:       map[string]string{"d/": ""},
			commands:    []string{"rmdir d", "ls"},
			expectText:  "Directory is empty",
		},
		{
			description: "rmdir root",
			commands:    []string{"rmdir /"},
			expectKind:  response.KindUnsupportedOperation,
		},
		{
			description: "rmdir current",
			files:       map[string]string{"d/": ""},
			commands:    []string{"cd d", "rmdir ."},
			expectKind:  response.KindUnsupportedOperation,
		},
		{
			description: "touch creates",
			commands:    []string{"touch note.txt", "ls"},
			contains:    []string{"note.txt", "0.0 B"},
		},
		{
			description: "touch existing",
			files:       map[string]string{"note.txt": "keep"},
			commands:    []string{"touch note.txt", "cat note.txt"},
			expectText:  "keep",
		},
		{
			description: "touch directory",
			files:       map[string]string{"d/": ""},
			commands:    []string{"touch d"},
			expectKind:  response.KindNotAFile,
			expectText:  "Is a directory: d",
		},
		{
			description: "touch root",
			commands:    []string{"touch /"},
			expectKind:  response.KindNotAFile,
			expectText:  "Is a directory: /",
		},
		{
			description: "rm directory",
			files:       map[string]string{"d/": ""},
			commands:    []string{"rm d"},
			expectKind:  response.KindUnsupportedOperation,
			expectText:  "Cannot remove directory with rm: d (use rmdir)",
		},
		{
			description: "rm missing",
			commands:    []string{"rm ghost.txt"},
			expectKind:  response.KindNotFound,
			expectText:  "File not found: ghost.txt",
		},
		{
			description: "del file",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"del a.txt", "ls"},
			expectText:  "Directory is empty",
		},
		{
			description: "cat text",
			files:       map[string]string{"notes.txt": "hello world"},
			commands:    []string{"cat notes.txt"},
			expectText:  "hello world",
		},
		{
			description: "cat image",
			files:       map[string]string{"pictures/cat.PNG": "\x89PNG"},
			commands:    []string{"cd pictures", "cat cat.PNG"},
			expectType:  response.TypeSignal,
		},
		{
			description: "cat binary",
			files:       map[string]string{"blob.bin": "\xff\xfe\x00\x01"},
			commands:    []string{"cat blob.bin"},
			expectKind:  response.KindEncodingError,
			expectText:  "Cannot display binary file: blob.bin",
		},
		{
			description: "cat directory",
			files:       map[string]string{"d/": ""},
			commands:    []string{"cat d"},
			expectKind:  response.KindNotAFile,
		},
		{
			description: "cat quoted name",
			files:       map[string]string{"my notes.txt": "spaced"},
			commands:    []string{`cat "my notes.txt"`},
			expectText:  "spaced",
		},
		{
			description: "rename",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"rename a.txt b.txt", "ls"},
			contains:    []string{"b.txt"},
			notContains: []string{"a.txt"},
		},
		{
			description: "rename missing argument",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"rename a.txt"},
			expectKind:  response.KindInvalidArgument,
		},
		{
			description: "rename missing source",
			commands:    []string{"mv a.txt b.txt"},
			expectKind:  response.KindNotFound,
		},
		{
			description: "rename no clobber",
			files:       map[string]string{"a.txt": "a", "b.txt": "b"},
			commands:    []string{"mv a.txt b.txt"},
			expectKind:  response.KindUnsupportedOperation,
		},
		{
			description: "rename outside",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"mv a.txt ../a.txt"},
			expectKind:  response.KindAccessDenied,
		},
		{
			description: "find substring",
			files:       map[string]string{"documents/Report.txt": "r", "music/song.mp3": "s", "report-old.md": "o"},
			commands:    []string{"find report"},
			expectText:  "/documents/Report.txt\n/report-old.md",
		},
		{
			description: "find pattern",
			files:       map[string]string{"documents/a.txt": "a", "b.txt": "b", "c.md": "c"},
			commands:    []string{"find *.txt"},
			expectText:  "/b.txt\n/documents/a.txt",
		},
		{
			description: "find none",
			files:       map[string]string{"a.txt": "a"},
			commands:    []string{"find zzz"},
			expectText:  "No matches found for: zzz",
		},
		{
			description: "properties file",
			files:       map[string]string{"documents/a.json": "{}"},
			commands:    []string{"properties documents/a.json"},
			contains:    []string{"a.json", "File", "/documents/a.json", "application/json", "2 bytes"},
		},
		{
			description: "properties directory",
			files:       map[string]string{"documents/a.txt": "a", "documents/b.txt": "b"},
			commands:    []string{"properties documents"},
			contains:    []string{"Directory", "Items:", "2"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			term := newTerminal(t, testCase.files)
			srv := New()
			var actual *response.Response
			for _, line := range testCase.commands {
				actual = run(t, srv, term, line)
			}
			require.NotNil(t, actual)
			if testCase.expectKind != "" {
				assert.Equal(t, response.TypeError, actual.Type, actual.Text)
				assert.Equal(t, testCase.expectKind, actual.ErrorKind, actual.Text)
			} else {
				assert.Equal(t, testCase.expectType, actual.Type, actual.Text)
			}
			if testCase.expectText != "" {
				assert.Equal(t, testCase.expectText, actual.Text)
			}
			for _, fragment := range testCase.contains {
				assert.Contains(t, actual.Text, fragment)
			}
			for _, fragment := range testCase.notContains {
				assert.NotContains(t, actual.Text, fragment)
			}
		})
	}
}

func TestService_CatMedia(t *testing.T) {
	term := newTerminal(t, map[string]string{"pictures/cat.png": "png", "music/song.mp3": "mp3", "videos/clip.mp4": "mp4"})
	srv := New()
	actual := run(t, srv, term, "cat pictures/cat.png")
	require.True(t, actual.IsSignal())
	assert.Equal(t, response.ImagePreview, actual.Signal.Kind)
	assert.Equal(t, "pictures/cat.png", actual.Signal.Payload)
	assert.Equal(t, "__IMAGE__::pictures/cat.png", response.Encode(actual))

	actual = run(t, srv, term, "cat /music/song.mp3")
	assert.Equal(t, response.AudioPreview, actual.Signal.Kind)

	actual = run(t, srv, term, "cat videos/clip.mp4")
	assert.Equal(t, response.VideoPreview, actual.Signal.Kind)
}

func TestService_CatTruncates(t *testing.T) {
	term := newTerminal(t, map[string]string{"long.txt": strings.Repeat("é", 30)})
	srv := New(WithPreviewLimit(10))
	actual := run(t, srv, term, "cat long.txt")
	assert.Equal(t, strings.Repeat("é", 10)+TruncationMarker, actual.Text)
}

func TestService_FindLimit(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 12; i++ {
		files[filepath.Join("logs", "log"+strings.Repeat("x", i)+".txt")] = "x"
	}
	term := newTerminal(t, files)
	srv := New(WithFindLimit(5))
	actual := run(t, srv, term, "find log")
	lines := strings.Split(actual.Text, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "... and 8 more", lines[5])
}

func TestService_FindSkipsEscapingLinks(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("s"), 0644))
	term := newTerminal(t, map[string]string{"public.txt": "p"})
	require.NoError(t, os.Symlink(outside, filepath.Join(term.Root(), "escape")))

	actual := run(t, New(), term, "find .txt")
	assert.Equal(t, "/public.txt", actual.Text)

	actual = run(t, New(), term, "cat escape/secret.txt")
	assert.Equal(t, response.KindAccessDenied, actual.ErrorKind)
}

func TestService_ListLinks(t *testing.T) {
	outside := t.TempDir()
	term := newTerminal(t, map[string]string{"docs/": "", "docs/a.txt": "hello", "public.txt": "p"})
	root := term.Root()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "etclink")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.txt"), filepath.Join(root, "dangling")))
	require.NoError(t, os.Symlink(filepath.Join(root, "docs"), filepath.Join(root, "docslink")))
	require.NoError(t, os.Symlink(filepath.Join(root, "docs", "a.txt"), filepath.Join(root, "alias.txt")))

	actual := run(t, New(), term, "ls")
	require.False(t, actual.IsError(), actual.Text)
	assert.NotContains(t, actual.Text, "etclink")
	assert.NotContains(t, actual.Text, "dangling")
	assert.Contains(t, actual.Text, "docslink/")
	assert.Contains(t, actual.Text, "public.txt")
	for _, line := range strings.Split(actual.Text, "\n") {
		if strings.Contains(line, "alias.txt") {
			assert.Contains(t, line, "5.0 B")
		}
	}
}

func TestPreview(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		limit       int
		expect      string
		expectOK    bool
	}{
		{description: "short", input: "abc", limit: 5, expect: "abc", expectOK: true},
		{description: "exact", input: "abcde", limit: 5, expect: "abcde", expectOK: true},
		{description: "over", input: "abcdef", limit: 5, expect: "abcde" + TruncationMarker, expectOK: true},
		{description: "multibyte over", input: "日本語テキスト", limit: 3, expect: "日本語" + TruncationMarker, expectOK: true},
		{description: "invalid", input: "ab\xffcd", limit: 5, expectOK: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, ok, err := Preview(strings.NewReader(testCase.input), testCase.limit)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectOK, ok)
			if ok {
				assert.Equal(t, testCase.expect, actual)
			}
		})
	}
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "0.0 B", HumanSize(0))
	assert.Equal(t, "512.0 B", HumanSize(512))
	assert.Equal(t, "1.5 KB", HumanSize(1536))
	assert.Equal(t, "1.0 MB", HumanSize(1024*1024))
	assert.Equal(t, "2.0 TB", HumanSize(2*1024*1024*1024*1024))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "📁", Icon("docs", true))
	assert.Equal(t, "🖼️", Icon("a.JPG", false))
	assert.Equal(t, "📝", Icon("readme.md", false))
	assert.Equal(t, "📄", Icon("noext", false))
}

func TestScrub(t *testing.T) {
	root := "/srv/users/alice"
	assert.Equal(t, "remove /docs: directory not empty", scrub(root, "remove /srv/users/alice/docs: directory not empty"))
	assert.Equal(t, "stat /srv/users/alice-evil/x", scrub(root, "stat /srv/users/alice-evil/x"))
}
