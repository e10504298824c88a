// Command intervalcheck parses duration phrases and prints the result.
//
// Each command-line argument is parsed as one phrase; with no arguments,
// phrases are read from stdin, one per line. Years and months require a
// reference date, supplied with -date (RFC 3339) or -now.
//
// Usage:
//
//	intervalcheck "5 weeks 3 days" "1h30m"
//	intervalcheck -date 2000-02-01T00:00:00Z "1 year 3 months"
//	echo "2 days 15 hours" | intervalcheck -now
//
// Exits non-zero when any phrase fails to parse.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Pulau-Komodo/parse-interval/interval"
)

var (
	refDate = flag.String("date", "", "RFC 3339 reference date for years and months")
	useNow  = flag.Bool("now", false, "resolve years and months against the current time")
)

func main() {
	flag.Parse()

	parse := interval.Parse
	switch {
	case *refDate != "":
		date, err := time.Parse(time.RFC3339, *refDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "intervalcheck: invalid -date: %v\n", err)
			os.Exit(2)
		}
		parse = func(s string) (time.Duration, error) {
			return interval.ParseWithDate(s, date)
		}
	case *useNow:
		parse = interval.ParseWithNow
	}

	ok := true
	if args := flag.Args(); len(args) > 0 {
		for _, phrase := range args {
			ok = report(parse, phrase) && ok
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			ok = report(parse, sc.Text()) && ok
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "intervalcheck: reading stdin: %v\n", err)
			os.Exit(2)
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// report parses one phrase and prints either the resolved duration or
// the classified error. Returns false on parse failure.
func report(parse func(string) (time.Duration, error), phrase string) bool {
	d, err := parse(phrase)
	if err != nil {
		fmt.Printf("%-40q %v\n", phrase, err)
		return false
	}
	fmt.Printf("%-40q %v (%d seconds)\n", phrase, d, int64(d/time.Second))
	return true
}
