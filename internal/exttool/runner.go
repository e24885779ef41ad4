package exttool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds external tool invocations when the Runner has
// no explicit timeout configured. A hung renderer must not hang the
// calling request forever.
const DefaultTimeout = 2 * time.Minute

// stderrTail limits how much captured stderr a ToolError carries.
const stderrTail = 512

// ToolError describes a failed external tool invocation: a non-zero
// exit, a missing binary, or a deadline kill.
type ToolError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Runner executes external converter processes under a deadline.
type Runner struct {
	// Timeout per invocation; zero means DefaultTimeout.
	Timeout time.Duration

	// Log is optional; nil disables invocation logging.
	Log logrus.FieldLogger
}

// Run executes tool with args and waits for it to exit. The process is
// killed when the deadline expires. Failures come back as *ToolError
// with a tail of the process stderr attached.
func (r *Runner) Run(ctx context.Context, tool string, args ...string) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tool, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{"tool": tool, "args": strings.Join(args, " ")}).Debug("running external tool")
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w (after %s)", ctx.Err(), timeout)
		}
		return &ToolError{Tool: tool, Err: err, Stderr: tail(stderr.Bytes())}
	}
	return nil
}

func tail(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > stderrTail {
		s = s[len(s)-stderrTail:]
	}
	return s
}
