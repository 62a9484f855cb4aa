package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func runSplice(t *testing.T, init string, args ...string) ([]string, error) {
	t.Helper()
	ops := make([]op, 0, len(args))
	for _, a := range args {
		o, err := parseOp(a)
		if err != nil {
			t.Fatal(err)
		}
		ops = append(ops, o)
	}
	s := &splice{log: quietLogger(), init: init, verify: true}
	l, err := s.run(context.Background(), ops)
	return l.Values(), err
}

func TestParseOp(t *testing.T) {
	o, err := parseOp("insert:-1:a,b")
	if err != nil {
		t.Fatal(err)
	}
	if o.kind != opInsert || o.from != -1 || !cmp.Equal(o.values, []string{"a", "b"}) {
		t.Error("unexpected op", o)
	}
	o, err = parseOp("erase:2:4")
	if err != nil {
		t.Fatal(err)
	}
	if o.kind != opErase || o.from != 2 || o.to != 4 {
		t.Error("unexpected op", o)
	}
	for _, bad := range []string{"erase:1", "rotate:1:2", "erase:x:2", "erase:1:y", "insert::a"} {
		if _, err := parseOp(bad); !errors.Is(err, errBadOp) {
			t.Errorf("%q: expected errBadOp, got %v", bad, err)
		}
	}
}

func TestSpliceSequence(t *testing.T) {
	got, err := runSplice(t, "0,1,2",
		"erase:1:2",
		"insert:0:3,4,5",
		"insert:2:0,1,2",
		"erase:7:12",
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"2", "5", "0"}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestSpliceThroughHead(t *testing.T) {
	got, err := runSplice(t, "0,1,2", "erase:2:4")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"1"}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestSpliceFromEmpty(t *testing.T) {
	got, err := runSplice(t, "", "insert:0:a,b", "insert:2:c")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	if _, err := runSplice(t, "", "erase:1:2"); err == nil {
		t.Error("expected offsets on an empty list to fail")
	}
}

func TestSpliceReportsMisuse(t *testing.T) {
	got, err := runSplice(t, "0,1,2", "erase:0:7")
	if err == nil {
		t.Error("expected an erase over two laps to fail")
	}
	if diff := cmp.Diff([]string{"0", "1", "2"}, got); diff != "" {
		t.Errorf("list should be untouched (-want +got):\n%s", diff)
	}
}
