package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/gkanwar/circular-list/circular"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var errBadOp = errors.New("malformed op")

type opKind int

const (
	opInsert opKind = iota
	opErase
)

// op is one edit. Offsets count steps from the list's Begin() and may be
// negative or run past End().
type op struct {
	kind   opKind
	from   int
	to     int
	values []string
	text   string
}

// parseOp reads "insert:<offset>:<v1,v2,...>" or "erase:<from>:<to>".
func parseOp(s string) (op, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return op{}, fmt.Errorf("%w: %q", errBadOp, s)
	}
	from, err := strconv.Atoi(parts[1])
	if err != nil {
		return op{}, fmt.Errorf("%w: %q: %v", errBadOp, s, err)
	}
	switch parts[0] {
	case "insert":
		return op{kind: opInsert, from: from, values: splitValues(parts[2]), text: s}, nil
	case "erase":
		to, err := strconv.Atoi(parts[2])
		if err != nil {
			return op{}, fmt.Errorf("%w: %q: %v", errBadOp, s, err)
		}
		return op{kind: opErase, from: from, to: to, text: s}, nil
	default:
		return op{}, fmt.Errorf("%w: unknown op %q", errBadOp, parts[0])
	}
}

func splitValues(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// apply runs o against l. Misuse of the list, such as an erase range longer
// than a lap, comes back as an error.
func (o op) apply(l *circular.List[string]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", o.text, r)
		}
	}()
	if l.Empty() && (o.from != 0 || o.to != 0) {
		return fmt.Errorf("%s: offsets on an empty list", o.text)
	}
	begin := l.Begin()
	switch o.kind {
	case opInsert:
		l.Insert(begin.Advance(o.from), o.values...)
	case opErase:
		l.Erase(begin.Advance(o.from), begin.Advance(o.to))
	}
	return nil
}

// splice implements subcommands.Command for the "splice" command.
type splice struct {
	log    *logrus.Logger
	init   string
	verify bool
}

// Name implements subcommands.Command.Name.
func (*splice) Name() string {
	return "splice"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*splice) Synopsis() string {
	return "apply insert and erase ops to a circular list"
}

// Usage implements subcommands.Command.Usage.
func (*splice) Usage() string {
	return `splice [-init a,b,c] [-verify] <op>...

Ops are insert:<offset>:<v1,v2,...> or erase:<from>:<to>. Offsets are steps
from the head; the list's end is the head one lap later.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *splice) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.init, "init", envString("CIRCULAR_INIT", ""), "comma separated initial values")
	f.BoolVar(&s.verify, "verify", false, "check ring invariants after every op")
}

// Execute implements subcommands.Command.Execute.
func (s *splice) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ops := make([]op, 0, f.NArg())
	for _, arg := range f.Args() {
		o, err := parseOp(arg)
		if err != nil {
			s.log.WithError(err).Error("bad op")
			return subcommands.ExitUsageError
		}
		ops = append(ops, o)
	}

	l, err := s.run(ctx, ops)
	if err != nil {
		s.log.WithError(err).Error("splice failed")
		return subcommands.ExitFailure
	}
	fmt.Println(l)
	return subcommands.ExitSuccess
}

func (s *splice) run(ctx context.Context, ops []op) (*circular.List[string], error) {
	l := circular.New(splitValues(s.init)...)
	for _, o := range ops {
		if err := ctx.Err(); err != nil {
			return l, err
		}
		if err := o.apply(l); err != nil {
			return l, err
		}
		if s.verify {
			if err := l.Validate(); err != nil {
				return l, fmt.Errorf("after %s: %w", o.text, err)
			}
		}
		s.log.WithFields(logrus.Fields{"op": o.text, "size": l.Size()}).Debug(l.String())
	}
	return l, nil
}
