package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// recall runs the command tree against a diskv store in a temp dir so state
// carries over between runs the way it does between real invocations.
type recall struct {
	t *testing.T
}

func newRecall(t *testing.T) *recall {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("RECALL_CONFIG_PATH", dir)
	t.Setenv("RECALL_PATH", dir)
	t.Setenv("RECALL_BACKEND", "diskv")
	t.Setenv("RECALL_NAMESPACE", "test-recall")
	return &recall{t: t}
}

func (r *recall) run(args ...string) (string, error) {
	r.t.Helper()
	var out, errOut bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (r *recall) mustRun(args ...string) string {
	r.t.Helper()
	out, err := r.run(args...)
	if err != nil {
		r.t.Fatalf("recall %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestAddLogRemove(t *testing.T) {
	r := newRecall(t)

	out := r.mustRun("add", "shipped", "the", "login", "fix", "-t", "did", "--tags", "auth", "--minutes", "45", "--json")
	var added struct {
		ID      string   `json:"id"`
		Text    string   `json:"text"`
		Type    string   `json:"type"`
		Tags    []string `json:"tags"`
		Minutes int      `json:"minutes"`
	}
	if err := json.Unmarshal([]byte(out), &added); err != nil {
		t.Fatalf("expected json from add: %v\n%s", err, out)
	}
	if added.Text != "shipped the login fix" || added.Type != "did" || added.Minutes != 45 {
		t.Fatalf("unexpected entry %+v", added)
	}

	r.mustRun("add", "waiting", "on", "review", "-t", "blocker", "--yesterday")

	out = r.mustRun("log", "--json")
	var listing struct {
		Total  int `json:"total"`
		Groups []struct {
			Day string `json:"day"`
		} `json:"groups"`
	}
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("expected json from log: %v\n%s", err, out)
	}
	if listing.Total != 2 || len(listing.Groups) != 2 {
		t.Fatalf("expected 2 entries over 2 days, got %+v", listing)
	}

	out = r.mustRun("log", "--type", "blocker")
	if !strings.Contains(out, "waiting on review") || strings.Contains(out, "shipped the login fix") {
		t.Fatalf("unexpected filtered log:\n%s", out)
	}

	r.mustRun("rm", added.ID[:8])
	out = r.mustRun("log", "--json")
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("expected json from log: %v\n%s", err, out)
	}
	if listing.Total != 1 {
		t.Fatalf("expected 1 entry after rm, got %d", listing.Total)
	}
}

func TestAddErrors(t *testing.T) {
	r := newRecall(t)

	if _, err := r.run("add"); err == nil {
		t.Fatalf("expected an error without text")
	}
	if _, err := r.run("add", "x", "-t", "meeting"); err == nil {
		t.Fatalf("expected an error for an unknown type")
	}
	out, err := r.run("add", "x", "--mood", "7", "--json")
	if err != nil {
		t.Fatalf("expected the error as json, got %v", err)
	}
	if !strings.Contains(out, `"error"`) {
		t.Fatalf("expected an error document, got %q", out)
	}
}

func TestFilterPersists(t *testing.T) {
	r := newRecall(t)
	r.mustRun("add", "tagged", "--tags", "ops")
	r.mustRun("add", "untagged")

	r.mustRun("filter", "--toggle-tag", "ops")
	out := r.mustRun("log")
	if !strings.Contains(out, "tagged #ops") || strings.Contains(out, "untagged") {
		t.Fatalf("expected only the ops entry:\n%s", out)
	}

	r.mustRun("filter", "--toggle-tag", "ops")
	out = r.mustRun("log")
	if !strings.Contains(out, "untagged") {
		t.Fatalf("expected the tag filter to be toggled off:\n%s", out)
	}
}

func TestStandupMode(t *testing.T) {
	r := newRecall(t)
	r.mustRun("add", "planned", "the", "demo", "-t", "plan")

	if out := r.mustRun(); strings.Contains(out, "Standup - ") {
		t.Fatalf("expected help without standup mode:\n%s", out)
	}

	r.mustRun("settings", "--standup-mode", "on")
	out := r.mustRun()
	if !strings.Contains(out, "Standup - ") || !strings.Contains(out, "planned the demo") {
		t.Fatalf("expected the standup:\n%s", out)
	}
}

func TestReviewMode(t *testing.T) {
	r := newRecall(t)
	if _, err := r.run("review", "--mode", "today"); err == nil {
		t.Fatalf("expected an error for a non weekly mode")
	}
	out := r.mustRun("review", "--mode", "last7")
	if !strings.Contains(out, "Focus tags:") {
		t.Fatalf("unexpected review:\n%s", out)
	}
}

func TestUnavailableStorage(t *testing.T) {
	r := newRecall(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("RECALL_PATH", filepath.Join(blocker, "store"))

	out := r.mustRun("standup")
	if !strings.Contains(out, "Standup - ") || !strings.Contains(out, "(none yet)") {
		t.Fatalf("expected a placeholder standup:\n%s", out)
	}

	out = r.mustRun("add", "still", "works", "-t", "did")
	if !strings.Contains(out, "still works") {
		t.Fatalf("expected the entry to be added in memory:\n%s", out)
	}
}

func TestReset(t *testing.T) {
	r := newRecall(t)
	r.mustRun("add", "one")
	r.mustRun("add", "two")

	if _, err := r.run("reset"); err == nil {
		t.Fatalf("expected reset to need --yes")
	}
	r.mustRun("reset", "--yes")

	out := r.mustRun("log", "--json")
	var listing struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("expected json from log: %v\n%s", err, out)
	}
	if listing.Total != 0 {
		t.Fatalf("expected an empty log after reset, got %d", listing.Total)
	}
}

func TestVersion(t *testing.T) {
	r := newRecall(t)
	if out := r.mustRun("version", "--short"); !strings.Contains(out, "dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
