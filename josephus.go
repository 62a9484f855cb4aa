package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/gkanwar/circular-list/circular"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var errBadCircle = errors.New("circle needs at least one person and a step of at least one")

// josephus implements subcommands.Command for the "josephus" command.
type josephus struct {
	log *logrus.Logger
	n   int
	k   int
}

// Name implements subcommands.Command.Name.
func (*josephus) Name() string {
	return "josephus"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*josephus) Synopsis() string {
	return "remove every k-th of n people standing in a circle"
}

// Usage implements subcommands.Command.Usage.
func (*josephus) Usage() string {
	return "josephus [-n people] [-k step]\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (j *josephus) SetFlags(f *flag.FlagSet) {
	f.IntVar(&j.n, "n", envInt("CIRCULAR_N", 7), "number of people in the circle")
	f.IntVar(&j.k, "k", envInt("CIRCULAR_K", 3), "count at which a person leaves")
}

// Execute implements subcommands.Command.Execute.
func (j *josephus) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	order, err := eliminationOrder(ctx, j.n, j.k)
	if err != nil {
		j.log.WithError(err).WithFields(logrus.Fields{"n": j.n, "k": j.k}).Error("josephus failed")
		return subcommands.ExitFailure
	}
	for i, p := range order {
		j.log.WithFields(logrus.Fields{"round": i + 1, "person": p}).Debug("eliminated")
	}
	fmt.Println(order)
	j.log.WithField("survivor", order[len(order)-1]).Info("done")
	return subcommands.ExitSuccess
}

// eliminationOrder returns people 1..n in the order they leave the circle
// when every k-th one is removed. The last entry is the survivor.
func eliminationOrder(ctx context.Context, n, k int) ([]int, error) {
	if n < 1 || k < 1 {
		return nil, fmt.Errorf("%w: n=%d k=%d", errBadCircle, n, k)
	}
	people := make([]int, n)
	for i := range people {
		people[i] = i + 1
	}
	circle := circular.New(people...)

	order := make([]int, 0, n)
	it := circle.Begin()
	for !circle.Empty() {
		if err := ctx.Err(); err != nil {
			return order, err
		}
		it = it.Advance(k - 1)
		order = append(order, it.Value())
		it = circle.Erase(it, it.Next())
	}
	return order, nil
}
