package fork

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"time"
)

const waitDelay = 3 * time.Second

// BackgroundProcess runs a binary under test and collects its output.
type BackgroundProcess struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer

	done    chan struct{}
	waitErr error

	waitPortInterval    time.Duration
	waitPortConnTimeout time.Duration
}

// NewBackgroundProcess returns new unstarted background process instance.
func NewBackgroundProcess(ctx context.Context, command string, opts ...ProcessOpt) *BackgroundProcess {
	p := &BackgroundProcess{
		cmd:                 exec.CommandContext(ctx, command),
		waitPortInterval:    100 * time.Millisecond,
		waitPortConnTimeout: 50 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.stdout = new(buffer)
	p.cmd.Stdout = p.stdout
	p.stderr = new(buffer)
	p.cmd.Stderr = p.stderr
	p.done = make(chan struct{})
	// a grandchild holding the output pipes must not block Wait forever
	p.cmd.WaitDelay = waitDelay

	return p
}

// Start attempts to create OS process and start command execution.
func (p *BackgroundProcess) Start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	go func() {
		p.waitErr = p.cmd.Wait()
		close(p.done)
	}()
	return nil
}

// Wait blocks until the process exits and returns its exit code.
// Non-zero exit codes are not reported as errors.
func (p *BackgroundProcess) Wait(ctx context.Context) (exitCode int, err error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if p.waitErr != nil && !errors.As(p.waitErr, &exitErr) {
		return -1, p.waitErr
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// WaitPort tries to perform network connection to given port.
func (p *BackgroundProcess) WaitPort(ctx context.Context, network, port string) error {
	ticker := time.NewTicker(p.waitPortInterval)
	defer ticker.Stop()

	port = strings.TrimLeft(port, ":")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			conn, _ := net.DialTimeout(network, ":"+port, p.waitPortConnTimeout)
			if conn != nil {
				_ = conn.Close()
				return nil
			}
		}
	}
}

// Stdout returns everything the process has written to stdout so far.
func (p *BackgroundProcess) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *BackgroundProcess) Stderr() []byte {
	return p.stderr.Bytes()
}

// Stop attempts to send given signals to process one by one.
// After first successful signal attempt exit code of process will be returned
func (p *BackgroundProcess) Stop(signals ...os.Signal) (exitCode int, err error) {
	for _, sig := range signals {
		err = p.cmd.Process.Signal(sig)
		if err == nil {
			break
		}
	}

	if err != nil {
		return -1, fmt.Errorf("error sending signal to process: %w", err)
	}

	<-p.done
	return p.cmd.ProcessState.ExitCode(), nil
}

// String returns a human-readable representation of process command.
func (p *BackgroundProcess) String() string {
	return p.cmd.String()
}
