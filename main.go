package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/detect-changes/cmd"
	errUtils "github.com/cloudposse/detect-changes/errors"
	log "github.com/cloudposse/detect-changes/pkg/logger"
)

// signalError records the signal that canceled the run.
type signalError struct {
	sig os.Signal
}

func (e signalError) Error() string {
	return "received signal " + e.sig.String()
}

func main() {
	ctx, cancel := context.WithCancelCause(context.Background())

	// Cancel the run on interrupt so a running git process is killed.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		cancel(signalError{sig: sig})
	}()

	exitCode := run(ctx)
	if code, ok := signalExitCode(context.Cause(ctx)); ok {
		exitCode = code
	}
	cancel(nil)

	os.Exit(exitCode)
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context) int {
	err := cmd.Execute(ctx)
	if err != nil {
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return errUtils.ExitCodeSuccess
}

// signalExitCode maps a signal cancellation to the POSIX exit code (128 + signal number).
func signalExitCode(cause error) (int, bool) {
	sigErr, ok := cause.(signalError)
	if !ok {
		return 0, false
	}
	if s, ok := sigErr.sig.(syscall.Signal); ok {
		return 128 + int(s), true
	}
	// SIGINT.
	return 130, true
}
