package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArrayFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    arrayFlags
		expected string
	}{
		{
			name:     "empty",
			flags:    arrayFlags{},
			expected: "",
		},
		{
			name:     "single",
			flags:    arrayFlags{"abfg"},
			expected: "abfg",
		},
		{
			name:     "multiple",
			flags:    arrayFlags{"abfg", "hj", ""},
			expected: "abfg, hj, ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.flags.String()
			if result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestArrayFlagsSet(t *testing.T) {
	var flags arrayFlags

	if err := flags.Set("abfg"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 1 || flags[0] != "abfg" {
		t.Errorf("Set() = %v, want [\"abfg\"]", flags)
	}

	if err := flags.Set("hj"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 2 || flags[1] != "hj" {
		t.Errorf("Set() = %v, want [\"abfg\", \"hj\"]", flags)
	}
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDefaultChecks(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "graph.dot")
	code, stdout, stderr := runCLI(t, "-dot", dot)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "13/13 checks passed") {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(dot)
	if err != nil {
		t.Fatalf("dot file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph NFA {") {
		t.Errorf("unexpected dot file:\n%s", data)
	}
}

func TestRunMatchInputs(t *testing.T) {
	code, stdout, _ := runCLI(t, "-pattern", "a*", "-dot", "", "-match", "aaa", "-match", "b")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	want := "\"aaa\": true\n\"b\": false\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunPrefix(t *testing.T) {
	_, stdout, _ := runCLI(t, "-pattern", "a", "-dot", "", "-match", "aaaa")
	if stdout != "\"aaaa\": false\n" {
		t.Errorf("full match stdout = %q", stdout)
	}
	_, stdout, _ = runCLI(t, "-pattern", "a", "-dot", "", "-prefix", "-match", "aaaa")
	if stdout != "\"aaaa\": true\n" {
		t.Errorf("prefix match stdout = %q", stdout)
	}
}

func TestRunChecksFile(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "suite.yaml")
	suite := `pattern: "ab*"
checks:
  - input: a
    want: true
  - input: abbb
    want: true
  - input: b
    want: true
`
	if err := os.WriteFile(suitePath, []byte(suite), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, "-dot", "", "-checks", suitePath)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "2/3 checks passed") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, `check failed: matches("b") = false, want true`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunChecksFilePatternOverride(t *testing.T) {
	suitePath := filepath.Join(t.TempDir(), "suite.yaml")
	suite := "pattern: x\nchecks:\n  - input: \"y\"\n    want: true\n"
	if err := os.WriteFile(suitePath, []byte(suite), 0644); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(t, "-dot", "", "-pattern", "y", "-checks", suitePath)
	if code != 0 {
		t.Errorf("exit code = %d, stderr:\n%s", code, stderr)
	}
}

func TestRunBadChecksFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("checks:\n  - input: a\n    wanted: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"unknown field", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "-dot", "", "-checks", tt.path)
			if code != 1 || !strings.Contains(stderr, "error:") {
				t.Errorf("exit code = %d, stderr = %q", code, stderr)
			}
		})
	}
}

func TestRunBadPattern(t *testing.T) {
	code, _, stderr := runCLI(t, "-pattern", "(a", "-dot", "")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unmatched left parenthesis") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runCLI(t, "-nope"); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRunGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.go")
	code, _, stderr := runCLI(t, "-pattern", "hel*o", "-dot", "", "-gen", out, "-name", "Hello", "-package", "hello")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	if !strings.Contains(string(src), "package hello") {
		t.Errorf("generated file:\n%s", src)
	}
}

func TestRunVerbose(t *testing.T) {
	_, _, stderr := runCLI(t, "-pattern", "a|b", "-dot", "", "-v", "-match", "a")
	for _, want := range []string{"[regnfa] NFA states: 6", "[regnfa] Features: Alternation, Literal"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestRunLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("hj\nhij\nx\nhiiiij\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, "-pattern", "hi*j", "-dot", "", "-lines", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if stdout != "hj\nhij\nhiiiij\n" {
		t.Errorf("stdout = %q", stdout)
	}

	_, stdout, _ = runCLI(t, "-pattern", "h", "-dot", "", "-prefix", "-lines", path)
	if stdout != "hj\nhij\nhiiiij\n" {
		t.Errorf("prefix stdout = %q", stdout)
	}

	if code, _, _ := runCLI(t, "-pattern", "h", "-dot", "", "-lines", path+".missing"); code != 1 {
		t.Errorf("missing lines file exit code = %d, want 1", code)
	}
}

func TestLoadSuiteQuotedBoolWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	suite := `checks:
  - input: "y"
    want: true
  - input: "n"
    want: false
  - input: "yes"
    want: true
  - input: "on"
    want: true
  - input: "off"
    want: false
`
	if err := os.WriteFile(path, []byte(suite), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSuite(path)
	if err != nil {
		t.Fatalf("loadSuite: %v", err)
	}
	want := []string{"y", "n", "yes", "on", "off"}
	if len(s.Checks) != len(want) {
		t.Fatalf("loaded %d checks, want %d", len(s.Checks), len(want))
	}
	for i, c := range s.Checks {
		if c.Input != want[i] {
			t.Errorf("check %d input = %q, want %q", i, c.Input, want[i])
		}
	}
}

func TestRunChecksFileQuotedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	suite := "pattern: \"y*\"\nchecks:\n  - input: \"y\"\n    want: true\n  - input: \"n\"\n    want: false\n"
	if err := os.WriteFile(path, []byte(suite), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, "-dot", "", "-checks", path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "2/2 checks passed") {
		t.Errorf("stdout = %q", stdout)
	}
}
