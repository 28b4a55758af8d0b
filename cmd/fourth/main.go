package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fourth"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var dump bool
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for script evaluation")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump machine state after the last script")
	flag.Parse()

	var opts []fourth.Option
	if trace {
		opts = append(opts, fourth.WithLogf(log.Printf))
	}
	machine := fourth.New(opts...)

	if flag.NArg() == 0 {
		if err := repl(machine); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
		return
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	os.Exit(runScripts(ctx, machine, flag.Args(), dump))
}
