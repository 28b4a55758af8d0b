package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"fourth"
	"fourth/internal/lineio"
	"fourth/internal/logio"
	"fourth/internal/panicerr"
)

// runScripts evaluates each named script file in order against the machine,
// returning a process exit code. Evaluation stops at the first failing line,
// which is reported with its file:line location.
func runScripts(ctx context.Context, machine *fourth.Machine, names []string, dump bool) int {
	var dlog logio.Logger
	dlog.SetOutput(os.Stderr)

	var in lineio.Input
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			dlog.Errorf("%v", err)
			return dlog.ExitCode()
		}
		in.Queue = append(in.Queue, f)
	}

	out := lineio.NewWriteFlusher(os.Stdout)
	err := panicerr.Recover("fourth", func() error {
		return runSession(ctx, machine, &in, out)
	})
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	dlog.ErrorIf(err)

	if dump {
		dlog.ErrorIf(machine.Dump(os.Stderr))
	}
	return dlog.ExitCode()
}

// runSession scans lines from in and evaluates them until input runs out,
// the context expires, or a line fails. Output fragments are written as-is,
// leaving all line breaks up to the evaluated program.
func runSession(ctx context.Context, machine *fourth.Machine, in *lineio.Input, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ScanLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		res, err := machine.Eval(line)
		if err != nil {
			return fmt.Errorf("%v: %w", in.Location(), err)
		}
		if _, err := io.WriteString(out, res); err != nil {
			return err
		}
	}
}
