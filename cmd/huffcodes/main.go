// Command huffcodes prints the Huffman code table for a file.
//
// Usage:
//
//     huffcodes [-mode bytes|runes|words] [-json] [-tree] [-debug] [FILE]
//
// With no FILE, or when FILE is "-", standard input is read.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffmantree/internal/report"
)

const progName = "huffcodes"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-12s} | %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	flags := flag.NewFlagSet(progName, flag.ExitOnError)
	modeName := flags.String("mode", string(report.ModeRunes), "split input into bytes, runes, or words")
	asJSON := flags.Bool("json", false, "write the report as JSON")
	withTree := flags.Bool("tree", false, "also dump the Huffman tree")
	debugLogging := flags.Bool("debug", false, "enable debug logging")
	_ = flags.Parse(os.Args[1:])

	if *debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if flags.NArg() > 1 {
		log.Fatalf("expected at most one FILE, got %d", flags.NArg())
	}

	mode, err := report.ParseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}

	data, err := readInput(flags.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	log.Debugf("read %d bytes", len(data))

	rep, err := report.Build(mode, data)
	if err != nil {
		log.Fatal(err)
	}
	if rep.DistinctSymbols == 1 {
		log.Noticef("only one distinct symbol; assigned the one-bit code %q", rep.Entries[0].Code)
	}

	if err := writeReport(os.Stdout, rep, *asJSON, *withTree); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func writeReport(w io.Writer, rep *report.Report, asJSON bool, withTree bool) error {
	if withTree {
		if _, err := rep.WriteTree(w); err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}

	if _, err := rep.WriteText(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
