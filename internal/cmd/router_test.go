package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rowantrollope/pathkit/internal/config"
	"github.com/rowantrollope/pathkit/internal/output"
)

func newTestRouter(t *testing.T) (*Router, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	formatter := &output.Formatter{Writer: &buf, ErrWriter: &buf}
	cfg := &config.Config{Cwd: "/home/user"}
	return NewRouter(cfg, formatter), &buf
}

func TestExecuteCommands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"normalize /a/b/../../c", "/c\n"},
		{"normalize a/../../b", "../b\n"},
		{"join a '' b ../c", "a/c\n"},
		{"join", ".\n"},
		{"resolve a", "/home/user/a\n"},
		{"resolve /x y", "/x/y\n"},
		{"resolve", "/home/user\n"},
		{"relative /a/b/c /a/b/d/e", "../d/e\n"},
		{"dirname /a/b/", "/a\n"},
		{"dirname a", ".\n"},
		{"basename /a/b.txt .txt", "b\n"},
		{"extname a.b.c", ".c\n"},
		{"extname .gitignore", "\n"},
		{"abs /a", "true\n"},
		{"abs a", "false\n"},
		{"format dir=/home/user base=file.tar.gz", "/home/user/file.tar.gz\n"},
		{"format root=/ base=x", "x\n"},
		{"pwd", "/home/user\n"},
	}

	for _, tt := range tests {
		r, buf := newTestRouter(t)
		if err := r.Execute(tt.line); err != nil {
			t.Errorf("Execute(%q) returned error: %v", tt.line, err)
			continue
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("Execute(%q) printed %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExecuteErrors(t *testing.T) {
	lines := []string{
		"frobnicate /a",
		"normalize",
		"relative /a",
		"relative /a /b /c",
		"basename",
		"format",
		"format not-a-field",
		"format bogus=1",
	}

	for _, line := range lines {
		r, _ := newTestRouter(t)
		if err := r.Execute(line); err == nil {
			t.Errorf("Execute(%q) = nil error, want error", line)
		}
	}
}

func TestExecuteEmptyLine(t *testing.T) {
	r, buf := newTestRouter(t)
	if err := r.Execute("   "); err != nil {
		t.Errorf("Execute of blank line returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Execute of blank line printed %q, want nothing", buf.String())
	}
}

func TestCdSession(t *testing.T) {
	r, buf := newTestRouter(t)

	steps := []struct {
		line    string
		wantCwd string
	}{
		{"cd /tmp", "/tmp"},
		{"cd ..", "/"},
		{"cd home/user", "/home/user"},
		{"cd -", "/"},
		{"cd -", "/home/user"},
		{"cd", "/"},
	}

	for _, st := range steps {
		if err := r.Execute(st.line); err != nil {
			t.Fatalf("Execute(%q) returned error: %v", st.line, err)
		}
		if r.State.Cwd != st.wantCwd {
			t.Errorf("after %q cwd = %q, want %q", st.line, r.State.Cwd, st.wantCwd)
		}
	}

	// Resolution follows the session directory.
	buf.Reset()
	if err := r.Execute("resolve x"); err != nil {
		t.Fatalf("Execute(\"resolve x\") returned error: %v", err)
	}
	if got := buf.String(); got != "/x\n" {
		t.Errorf("resolve x from / printed %q, want %q", got, "/x\n")
	}
}

func TestCdDashWithoutPrev(t *testing.T) {
	r, _ := newTestRouter(t)
	if err := r.Execute("cd -"); err == nil {
		t.Error("cd - with no previous directory should error")
	}
}

func TestIsBuiltin(t *testing.T) {
	r, _ := newTestRouter(t)
	if !r.IsBuiltin("NORMALIZE") {
		t.Error("IsBuiltin should be case-insensitive")
	}
	if r.IsBuiltin("frobnicate") {
		t.Error("IsBuiltin should reject unknown commands")
	}
	if len(r.CommandNames()) == 0 {
		t.Error("CommandNames should not be empty")
	}
}

func TestParseOutput(t *testing.T) {
	r, buf := newTestRouter(t)
	if err := r.Execute("parse /home/user/file.tar.gz"); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"root: /\n",
		" dir: /home/user\n",
		"base: file.tar.gz\n",
		" ext: .gz\n",
		"name: file.tar\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output %q missing %q", out, want)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	formatter := &output.Formatter{Writer: &buf, ErrWriter: &buf, JSON: true}
	cfg := &config.Config{Cwd: "/home/user"}
	r := NewRouter(cfg, formatter)

	if err := r.Execute("parse /a/b.txt"); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"root": "/"`, `"dir": "/a"`, `"base": "b.txt"`, `"ext": ".txt"`, `"name": "b"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON parse output %q missing %q", out, want)
		}
	}

	buf.Reset()
	if err := r.Execute("relative /a /a"); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got := buf.String(); got != "\"\"\n" {
		t.Errorf("JSON relative output = %q, want %q", got, "\"\"\n")
	}
}
