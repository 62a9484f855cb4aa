package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEliminationOrder(t *testing.T) {
	order, err := eliminationOrder(context.Background(), 7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 6, 2, 7, 5, 1, 4}, order); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestEliminationOrderStepOne(t *testing.T) {
	order, err := eliminationOrder(context.Background(), 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, order); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestEliminationSurvivor(t *testing.T) {
	// J(n, 2) = 2*(n - 2^floor(log2 n)) + 1
	for n, want := range map[int]int{1: 1, 2: 1, 3: 3, 5: 3, 6: 5, 16: 1, 41: 19} {
		order, err := eliminationOrder(context.Background(), n, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(order) != n || order[n-1] != want {
			t.Errorf("n=%d: survivor %d, expected %d", n, order[len(order)-1], want)
		}
	}
}

func TestEliminationRejectsBadCircle(t *testing.T) {
	if _, err := eliminationOrder(context.Background(), 0, 3); !errors.Is(err, errBadCircle) {
		t.Error("expected errBadCircle, got", err)
	}
	if _, err := eliminationOrder(context.Background(), 3, 0); !errors.Is(err, errBadCircle) {
		t.Error("expected errBadCircle, got", err)
	}
}

func TestEliminationStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := eliminationOrder(ctx, 5, 2); !errors.Is(err, context.Canceled) {
		t.Error("expected context.Canceled, got", err)
	}
}
