package ports

import (
	"strings"
	"testing"
)

func TestCommandResult_Success(t *testing.T) {
	if !(CommandResult{ExitCode: 0}).Success() {
		t.Error("exit 0 should be success")
	}
	if (CommandResult{ExitCode: 1}).Success() {
		t.Error("exit 1 should not be success")
	}
}

func TestCommandResult_Tail(t *testing.T) {
	short := CommandResult{Output: "hello\n"}
	if got := short.Tail(600); got != "hello" {
		t.Errorf("Tail() = %q, want %q", got, "hello")
	}

	long := CommandResult{Output: strings.Repeat("x", 1000) + "END\n"}
	tail := long.Tail(100)
	if len(tail) != 100 {
		t.Errorf("Tail length = %d, want 100", len(tail))
	}
	if !strings.HasSuffix(tail, "END") {
		t.Errorf("Tail() = %q, want suffix %q", tail, "END")
	}
}

func TestCommandCall_String(t *testing.T) {
	bare := CommandCall{Command: "docker"}
	if bare.String() != "docker" {
		t.Errorf("String() = %q, want %q", bare.String(), "docker")
	}

	full := CommandCall{Command: "apt-get", Args: []string{"install", "-y", "git"}}
	if full.String() != "apt-get install -y git" {
		t.Errorf("String() = %q, want %q", full.String(), "apt-get install -y git")
	}
}
