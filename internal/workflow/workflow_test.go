package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/workspace"
)

type gitCall struct {
	dir  string
	args []string
}

// fakeGit scripts git outcomes and records every invocation.
type fakeGit struct {
	calls    []gitCall
	fail     map[string]error  // failure by subcommand
	failDir  map[string]error  // failure by directory
	outByDir map[string]string // porcelain output by directory
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		fail:     map[string]error{},
		failDir:  map[string]error{},
		outByDir: map[string]string{},
	}
}

func (f *fakeGit) run(ctx context.Context, dir string, args ...string) error {
	f.calls = append(f.calls, gitCall{dir: dir, args: args})
	if err, ok := f.failDir[dir]; ok {
		return err
	}
	if len(args) > 0 {
		if err, ok := f.fail[args[0]]; ok {
			return err
		}
	}
	return nil
}

func (f *fakeGit) output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	if err := f.run(ctx, dir, args...); err != nil {
		return nil, err
	}
	return []byte(f.outByDir[dir]), nil
}

// argLines renders each recorded call as a space-joined line.
func (f *fakeGit) argLines() []string {
	lines := make([]string, len(f.calls))
	for i, c := range f.calls {
		lines[i] = strings.Join(c.args, " ")
	}
	return lines
}

func newTestWorkflow(t *testing.T, dir string) (*Workflow, *fakeGit) {
	t.Helper()
	store, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	session, err := workspace.NewSession(dir, store)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	w := New(session)
	fake := newFakeGit()
	w.run = fake.run
	w.output = fake.output
	w.tool = func(ctx context.Context, dir, name string, args ...string) error { return nil }
	return w, fake
}

func setConfig(t *testing.T, w *Workflow, key, value string) {
	t.Helper()
	if err := w.session.ConfigSet(key, value); err != nil {
		t.Fatalf("ConfigSet(%s) error = %v", key, err)
	}
}

// initRepoDir lays down a .git/HEAD marker on the given branch.
func initRepoDir(t *testing.T, dir, branch string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	head := fmt.Sprintf("ref: refs/heads/%s\n", branch)
	if err := os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte(head), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("git calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFireHookStrictGate(t *testing.T) {
	t.Parallel()

	w, _ := newTestWorkflow(t, t.TempDir())
	boom := errors.New("handler exploded")
	w.hooks.Register("custom-event", "boom", func(ctx context.Context) error { return boom })

	if err := w.FireHook(context.Background(), "custom-event"); err != nil {
		t.Errorf("FireHook() with strict off error = %v, want nil", err)
	}

	setConfig(t, w, config.KeyHooksStrict, "true")
	if err := w.FireHook(context.Background(), "custom-event"); !errors.Is(err, boom) {
		t.Errorf("FireHook() with strict on error = %v, want %v", err, boom)
	}
}

func TestFireHookStrictRequiresExactTrue(t *testing.T) {
	t.Parallel()

	w, _ := newTestWorkflow(t, t.TempDir())
	w.hooks.Register("custom-event", "boom", func(ctx context.Context) error {
		return errors.New("handler exploded")
	})

	// Only the literal "true" makes failures fatal.
	setConfig(t, w, config.KeyHooksStrict, "True")
	if err := w.FireHook(context.Background(), "custom-event"); err != nil {
		t.Errorf("FireHook() with strict %q error = %v, want nil", "True", err)
	}
}
