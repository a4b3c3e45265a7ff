// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"contractlang/internal/diag"
	"contractlang/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: contractlang <file.con>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	unit, parseErr := parser.ParseSource(string(source))
	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if parseErr != nil {
		reporter := diag.NewReporter(path, string(source))
		fmt.Print(formatParseError(reporter, parseErr))
		color.Red("Compilation failed after %s", formattedDuration)
		os.Exit(1)
	}

	fmt.Println(unit.String())
	color.Green("Successfully processed %s in %s", path, formattedDuration)
}

func formatParseError(reporter *diag.Reporter, err error) string {
	switch e := err.(type) {
	case *diag.LexError:
		return reporter.FormatLexError(e)
	case *diag.SyntaxError:
		return reporter.FormatSyntaxError(e)
	default:
		return fmt.Sprintf("error: %v\n", err)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%.2fh", d.Hours())
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
