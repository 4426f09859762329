package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// aggregateState is the on-disk stand-in for an in-process
// commitment.Session between separate commitctl invocations: the curve
// index fixed at init time, plus the most recently finalized aggregate
// (empty until the first add).
type aggregateState struct {
	curveIdx int
	bundle   string
}

func writeState(path string, s aggregateState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write state file %s: %w", path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%d\n%s\n", s.curveIdx, s.bundle); err != nil {
		return fmt.Errorf("cannot write state file %s: %w", path, err)
	}
	return nil
}

func readState(path string) (aggregateState, error) {
	f, err := os.Open(path)
	if err != nil {
		return aggregateState{}, fmt.Errorf("no session state at %s (did you run init first?): %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return aggregateState{}, fmt.Errorf("state file %s is empty", path)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return aggregateState{}, fmt.Errorf("state file %s has a malformed curve index: %w", path, err)
	}
	bundle := ""
	if sc.Scan() {
		bundle = strings.TrimSpace(sc.Text())
	}
	return aggregateState{curveIdx: idx, bundle: bundle}, nil
}
