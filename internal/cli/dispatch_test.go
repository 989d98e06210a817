package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tdo/internal/cli"
	"tdo/internal/commands"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/store"
	"tdo/internal/store/jsonfile"
	"tdo/internal/testutil"
)

// testFactory creates a store factory that returns the given FakeStore.
func testFactory(st *testutil.FakeStore) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (store.Store, error) {
		return st, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: unknown command: unknowncmd\n") {
		t.Errorf("expected unknown command error, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("expected usage message on stderr, got %q", stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: unknown command: --quiet\n") {
		t.Errorf("expected unknown command error, got %q", stderr.String())
	}
}

func TestDispatcher_NoArgsListsTodos(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "no todos\n" {
		t.Errorf("expected 'no todos\\n', got %q", stdout.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "tdo 0.1.0\n" {
		t.Errorf("expected 'tdo 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--quiet", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout.String())
	}
	if len(st.Tasks()) != 1 {
		t.Errorf("expected 1 task, got %d", len(st.Tasks()))
	}
}

func TestDispatcher_RemoveAliases(t *testing.T) {
	for _, alias := range []string{"remove", "rm", "del"} {
		st := testutil.NewFakeStore()
		dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

		var stdout, stderr bytes.Buffer
		dispatcher.Run(context.Background(), []string{"add", "x"}, &stdout, &stderr)
		code := dispatcher.Run(context.Background(), []string{alias, "1"}, &stdout, &stderr)

		if code != exitcode.Success {
			t.Errorf("%s: expected exit code %d, got %d (stderr: %q)", alias, exitcode.Success, code, stderr.String())
		}
		if len(st.Tasks()) != 0 {
			t.Errorf("%s: expected empty list, got %+v", alias, st.Tasks())
		}
	}
}

// TestDispatcher_Scenario drives the real JSON-file store through a full
// add/list/done/remove cycle via the --db flag.
func TestDispatcher_Scenario(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "todos.json")
	factory := func(ctx context.Context, cfg *config.Config) (store.Store, error) {
		return jsonfile.New(cfg.DBPath), nil
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	ctx := context.Background()

	run := func(args ...string) (string, string, int) {
		var stdout, stderr bytes.Buffer
		code := dispatcher.Run(ctx, append(args, "--db="+dbPath), &stdout, &stderr)
		return stdout.String(), stderr.String(), code
	}
	runCmd := func(cmd string, args ...string) (string, string, int) {
		full := append([]string{cmd, "--db=" + dbPath}, args...)
		var stdout, stderr bytes.Buffer
		code := dispatcher.Run(ctx, full, &stdout, &stderr)
		return stdout.String(), stderr.String(), code
	}

	// Missing file: empty list.
	stdout, stderr, code := run("list")
	if code != exitcode.Success || stdout != "no todos\n" || stderr != "" {
		t.Fatalf("list on missing file: stdout=%q stderr=%q code=%d", stdout, stderr, code)
	}

	// Add one task.
	stdout, stderr, code = runCmd("add", "Buy milk")
	if code != exitcode.Success || stdout != "added #1\n" {
		t.Fatalf("add: stdout=%q stderr=%q code=%d", stdout, stderr, code)
	}

	stdout, _, code = run("list")
	if code != exitcode.Success || stdout != "1. [  ] Buy milk — \n" {
		t.Fatalf("list after add: stdout=%q code=%d", stdout, code)
	}

	// Complete it.
	_, stderr, code = runCmd("done", "1")
	if code != exitcode.Success {
		t.Fatalf("done: stderr=%q code=%d", stderr, code)
	}

	stdout, _, code = runCmd("list", "--done")
	if code != exitcode.Success || stdout != "1. [x] Buy milk — \n" {
		t.Fatalf("list --done: stdout=%q code=%d", stdout, code)
	}

	// Out-of-range mutation must not touch the file.
	before, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read backing file: %v", err)
	}
	_, stderr, code = runCmd("done", "9")
	if code != exitcode.UserError {
		t.Fatalf("done 9: expected user error, got %d (stderr: %q)", code, stderr)
	}
	after, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read backing file: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed mutation modified the backing file")
	}

	// Remove it: back to an empty array.
	_, stderr, code = runCmd("remove", "1")
	if code != exitcode.Success {
		t.Fatalf("remove: stderr=%q code=%d", stderr, code)
	}
	data, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read backing file: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("expected empty array on disk, got %q", string(data))
	}
}
