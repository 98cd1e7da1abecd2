package pipeline

import (
	"errors"
	"fmt"

	"faultline.dev/pkg/faultline/pkg/codepath"
	"faultline.dev/pkg/faultline/pkg/probe"
)

// Failure modes the ledger pipeline can have injected.
var (
	ErrOpenLedger   = errors.New("ledger: open failed")
	ErrAppendEntry  = errors.New("ledger: append failed")
	ErrBalanceCheck = errors.New("ledger: balance check failed")
)

func init() {
	register(Pipeline{
		Name:        "ledger",
		Description: "append entries to an in-memory ledger and balance it",
		Args:        ledgerArgs,
	})
}

type ledger struct {
	entries []int
}

func (l *ledger) append(amount int) error {
	l.entries = append(l.entries, amount)
	return nil
}

func (l *ledger) balance() (int, error) {
	total := 0
	for _, e := range l.entries {
		total += e
	}

	if total < 0 {
		return 0, fmt.Errorf("ledger: negative balance %d", total)
	}

	return total, nil
}

// ledgerArgs rebuilds the ledger per pass so each verification run sees
// the same entry sequence.
func ledgerArgs(s *probe.State) codepath.Args[string] {
	var book *ledger

	return codepath.Args[string]{
		Setup: func() {
			book = &ledger{}
		},
		Path: func() (string, error) {
			return runLedger(s, book)
		},
	}
}

func runLedger(s *probe.State, book *ledger) (string, error) {
	if book == nil {
		return "", ErrOpenLedger
	}

	err := probe.VisitErr(s, "open ledger", nil, ErrOpenLedger)
	if err != nil {
		return "", err
	}

	for _, amount := range []int{25, 125, 50} {
		err = probe.VisitErr(s, "append entry", book.append(amount), ErrAppendEntry)
		if err != nil {
			return "", err
		}
	}

	total, err := book.balance()

	total, err = probe.Visit(s, "balance ledger", total, err, ErrBalanceCheck)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("balance=%d", total), nil
}
