// Command factorion-cli is a small terminal demo of the pipeline: it reads
// lines from stdin, treats each as if it were one incoming comment, and
// prints the resulting status and reply. Wiring to any real Reddit/Discord
// adapter, persistence of seen comment ids, or metrics shipping is out of
// this repository's scope; this binary exists to exercise the library, not
// to replace those adapters.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"factorionlib/locale"
	"factorionlib/parser"
	"factorionlib/pipeline"
	"factorionlib/planner"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	localeKey      string
	maxReplyLength int
	termial        bool
	parallel       bool
)

var rootCmd = &cobra.Command{
	Use:   "factorion-cli",
	Short: "Detect and compute factorial-like notations in text read from stdin",
	Long:  "factorion-cli reads one line of text per iteration, runs it through the calculation pipeline, and prints the resulting status and reply, one synthetic comment id per line.",
	RunE:  runREPL,
}

func init() {
	rootCmd.Flags().StringVar(&localeKey, "locale", "en", "locale key to render replies with")
	rootCmd.Flags().IntVar(&maxReplyLength, "max-reply-length", 2000, "reply size budget in bytes")
	rootCmd.Flags().BoolVar(&termial, "termial", true, "enable termial ('?') recognition")
	rootCmd.Flags().BoolVar(&parallel, "parallel", false, "execute independent jobs concurrently")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	store, err := locale.LoadBuiltin()
	if err != nil {
		return fmt.Errorf("loading builtin locales: %w", err)
	}
	consts := planner.DefaultConsts(store)
	consts.ParallelJobs = parallel
	opts := pipeline.Options{TermialEnabled: termial, Consts: consts}

	color.Cyan("factorion-cli — one line per synthetic comment, Ctrl-D to quit")
	fmt.Fprintln(os.Stderr)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		commentID := uuid.NewString()
		status, reply, meta, errKind := pipeline.Process(context.Background(), text, commentID, parser.Commands(0), maxReplyLength, localeKey, "", opts)

		printResult(status, reply, meta, errKind)
	}
	return scanner.Err()
}

func printResult(status pipeline.Status, reply string, commentID string, errKind string) {
	label := statusColor(status)(status.String())
	fmt.Printf("[%s] %s\n", commentID[:8], label)
	if errKind != "" {
		fmt.Fprintf(os.Stderr, "(kind: %s)\n", errKind)
	}
	if reply == "" {
		return
	}
	fmt.Println(reply)
	fmt.Fprintf(os.Stderr, "(%s)\n", humanize.Bytes(uint64(len(reply))))
}

func statusColor(status pipeline.Status) func(format string, a ...interface{}) string {
	switch status {
	case pipeline.FactorialsFound:
		return color.GreenString
	case pipeline.NotAFactorial, pipeline.NoFactorial:
		return color.YellowString
	default:
		return color.RedString
	}
}
