package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Result is the output of a CLI run.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// RunZentao executes the zentao binary with args. The env values are added on
// top of the current environment, logs are disabled unless ZENTAO_DEBUG is set.
func RunZentao(ctx context.Context, binary string, args []string, env map[string]string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	if os.Getenv("ZENTAO_DEBUG") == "" {
		cmd.Env = append(cmd.Env, "ZENTAO_NO_LOG=true")
	}

	err := cmd.Run()

	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}
