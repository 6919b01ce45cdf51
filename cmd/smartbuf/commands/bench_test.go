package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBench_Defaults(t *testing.T) {
	stdout, stderr, code := runCmd(t, "bench", "--iterations", "3", "--sizes", "8")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, want := range []string{"construct/auto", "construct/heap", "construct/make", "clone", "access", "per_op"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestBench_RequestFile(t *testing.T) {
	path := writeTestYAML(t, "bench.yaml", "iterations: 2\nsizes: [8]\n")

	stdout, stderr, code := runCmd(t, "bench", "-f", path, "--json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}

	var results []BenchResult
	if err := json.Unmarshal([]byte(stdout), &results); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	for _, r := range results {
		if r.Iterations != 2 {
			t.Errorf("%s: iterations = %d, want 2 (from file)", r.Case, r.Iterations)
		}
		if r.Size != 8 {
			t.Errorf("%s: size = %d, want 8", r.Case, r.Size)
		}
	}
}

func TestBench_FlagOverridesFile(t *testing.T) {
	path := writeTestYAML(t, "bench.yaml", "iterations: 2\nsizes: [8]\n")

	stdout, stderr, code := runCmd(t, "bench", "-f", path, "--iterations", "4", "--json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}

	var results []BenchResult
	if err := json.Unmarshal([]byte(stdout), &results); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if results[0].Iterations != 4 {
		t.Errorf("iterations = %d, want flag override 4", results[0].Iterations)
	}
}

func TestBench_BadRequest(t *testing.T) {
	_, _, code := runCmd(t, "bench", "--iterations", "0")
	if code == 0 {
		t.Fatal("expected failure for zero iterations")
	}

	_, _, code = runCmd(t, "bench", "--sizes", "0")
	if code == 0 {
		t.Fatal("expected failure for size 0")
	}

	_, _, code = runCmd(t, "bench", "-f", "/nonexistent/bench.yaml")
	if code == 0 {
		t.Fatal("expected failure for missing request file")
	}
}
