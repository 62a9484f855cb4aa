// Command circular drives circular lists from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
)

func main() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-sigs
		cancel()
	}()

	log := newLogger(os.Getenv("CIRCULAR_LOG_LEVEL"))

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&josephus{log: log}, "")
	subcommands.Register(&splice{log: log}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(ctx)))
}
