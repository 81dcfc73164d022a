package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iliyamo/reservation-bench/internal/bench"
)

// runInteractive walks the operator through configuring a single run:
// pick an event, bootstrap its seats, choose user count, isolation
// level and conflict percentage, then confirm and execute.  Any
// expected failure prints a diagnostic and returns normally.
func (a *app) runInteractive(ctx context.Context) {
	sc := bufio.NewScanner(os.Stdin)

	fmt.Println("=== seat reservation isolation bench ===")
	fmt.Printf("database: %s@%s:%s/%s\n", a.cfg.DBUser, a.cfg.DBHost, a.cfg.DBPort, a.cfg.DBName)

	events, err := a.events.List(ctx)
	if err != nil {
		log.Printf("failed to list events: %v", err)
		return
	}
	if len(events) == 0 {
		log.Printf("no events found; create one in the events table first")
		return
	}
	fmt.Println("\navailable events:")
	for _, ev := range events {
		fmt.Printf("  %d | %s | %s\n", ev.ID, ev.Name, ev.Date.Format("2006-01-02"))
	}

	var eventID uint64
	for {
		n, ok := promptInt(sc, "event id", 1, 1<<30)
		if !ok {
			return
		}
		for _, ev := range events {
			if ev.ID == uint64(n) {
				eventID = ev.ID
			}
		}
		if eventID != 0 {
			break
		}
		fmt.Println("unknown event id, try again")
	}

	seatCount, ok := promptInt(sc, "seats to create for the event (10-100)", 10, 100)
	if !ok {
		return
	}
	if !a.bootstrap(ctx, eventID, seatCount) {
		return
	}

	users, ok := promptInt(sc, "concurrent users to simulate (1-50)", 1, 50)
	if !ok {
		return
	}

	fmt.Println("\nisolation level:")
	for i, l := range bench.Levels {
		fmt.Printf("  %d. %s\n", i+1, l)
	}
	choice, ok := promptInt(sc, "option (1-3)", 1, len(bench.Levels))
	if !ok {
		return
	}
	level := bench.Levels[choice-1]

	conflict, ok := promptInt(sc, "conflict percentage (0-100)", 0, 100)
	if !ok {
		return
	}

	fmt.Printf("\nevent %d | %d seats | %d users | %s | %d%% conflict\n",
		eventID, seatCount, users, level, conflict)
	if !promptYes(sc, "start the run? (y/n)") {
		fmt.Println("cancelled")
		return
	}
	a.runOne(ctx, users, level, eventID, conflict)
}

// promptInt asks until it gets an integer within [min, max].  The
// second return value is false when input is exhausted.
func promptInt(sc *bufio.Scanner, label string, min, max int) (int, bool) {
	for {
		fmt.Printf("> %s: ", label)
		if !sc.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil || n < min || n > max {
			fmt.Printf("enter a number between %d and %d\n", min, max)
			continue
		}
		return n, true
	}
}

// promptYes reads a yes/no answer; anything but an explicit yes is no.
func promptYes(sc *bufio.Scanner, label string) bool {
	fmt.Printf("> %s ", label)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}
