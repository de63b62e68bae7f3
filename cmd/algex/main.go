// cmd/algex is the CLI entry point for the simplifier: manual os.Args
// parsing and a map[string]string of single-letter aliases, the same shape
// as the teacher's cmd/sentra/main.go. Unlike the teacher, every error path
// returns an exit code instead of calling log.Fatal, so run can be driven
// from the testscript harness in main_test.go as well as from main itself.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/exprparse"
	"github.com/lexiform/algex/internal/memo"
	"github.com/lexiform/algex/internal/obslog"
	"github.com/lexiform/algex/internal/progress"
	"github.com/lexiform/algex/internal/reporting"
	"github.com/lexiform/algex/internal/search"
	"github.com/lexiform/algex/internal/smodel"
)

const version = "0.1.0"

var commandAliases = map[string]string{
	"s": "simplify",
	"t": "trace",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run holds the entire CLI body and returns a process exit code instead of
// calling os.Exit/log.Fatal directly, so cmd/algex's own test binary can
// dispatch into it the way github.com/rogpeppe/go-internal/testscript
// expects from a registered subcommand.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
		args[0] = alias
	}

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		if len(args) > 1 {
			showCommandHelp(args[1])
		} else {
			showUsage()
		}
		return 0
	}

	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		showVersion()
		return 0
	}

	switch cmd {
	case "simplify":
		return runSimplify(args[1:], false)
	case "trace":
		return runSimplify(args[1:], true)
	case "serve":
		return runServe(args[1:])
	}

	return suggestCommand(cmd)
}

// parsedArgs is the outcome of pulling flags out of a command's argument
// list; everything left over is the positional expression text.
type parsedArgs struct {
	expr       string
	overrides  map[config.Key]int
	memoPath   string
	stepLimit  int
	costCeil   int
}

func parseFlags(args []string) (parsedArgs, error) {
	pa := parsedArgs{overrides: map[config.Key]int{}}
	var positional []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-O" || a == "--set":
			if i+1 >= len(args) {
				return pa, fmt.Errorf("%s requires a key=value argument", a)
			}
			i++
			kv := strings.SplitN(args[i], "=", 2)
			if len(kv) != 2 {
				return pa, fmt.Errorf("invalid override %q, want key=value", args[i])
			}
			n, err := strconv.Atoi(kv[1])
			if err != nil {
				return pa, fmt.Errorf("invalid override value %q: %v", kv[1], err)
			}
			pa.overrides[config.Key(kv[0])] = n
		case a == "--memo":
			if i+1 >= len(args) {
				return pa, fmt.Errorf("--memo requires a path argument")
			}
			i++
			pa.memoPath = args[i]
		case a == "--step-limit":
			if i+1 >= len(args) {
				return pa, fmt.Errorf("--step-limit requires a value")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return pa, fmt.Errorf("invalid --step-limit %q: %v", args[i], err)
			}
			pa.stepLimit = n
		case a == "--cost-ceiling":
			if i+1 >= len(args) {
				return pa, fmt.Errorf("--cost-ceiling requires a value")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return pa, fmt.Errorf("invalid --cost-ceiling %q: %v", args[i], err)
			}
			pa.costCeil = n
		default:
			positional = append(positional, a)
		}
	}

	pa.expr = strings.Join(positional, " ")
	return pa, nil
}

func buildConfig(overrides map[config.Key]int) *config.Config {
	cfg := config.Default()
	for k, v := range overrides {
		cfg = cfg.WithOverride(k, v)
	}
	return cfg
}

func runSimplify(args []string, trace bool) int {
	pa, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if pa.expr == "" {
		fmt.Fprintln(os.Stderr, "No expression provided to simplify")
		return 1
	}

	cfg := buildConfig(pa.overrides)
	opts := smodel.Options{StepLimit: pa.stepLimit, CostCeiling: pa.costCeil}

	var store *memo.Store
	if pa.memoPath != "" {
		store, err = memo.Open(pa.memoPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening memo store: %v\n", err)
			return 1
		}
		defer store.Close()

		if cached, cost, ok, err := store.Get(pa.expr); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading memo store: %v\n", err)
			return 1
		} else if ok {
			printPath(cached, cost, true)
			return 0
		}
	}

	if trace {
		opts.OnPop = func(m *smodel.Model) {
			fmt.Fprintf(os.Stderr, "[%s] cost=%s remain=%s %s\n",
				m.Transform, humanize.Comma(int64(m.TotalApproxCost)), humanize.Comma(int64(m.RemainCost)),
				reporting.Render(m.Refs))
		}
	}

	cache := aref.NewCache(0)
	refs, err := exprparse.Parse(pa.expr, cache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	root := smodel.NewRoot(refs, cfg)
	start := time.Now()
	outcome, err := search.Run(context.Background(), cache, root, cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch outcome.Status {
	case smodel.Solved:
		final := outcome.Path[len(outcome.Path)-1]
		path := reporting.FormatPath(outcome.Path) + "\n" +
			reporting.Render(final.Refs) + " (cost: " + strconv.Itoa(final.TotalApproxCost) + ")"
		if store != nil {
			if err := store.Put(pa.expr, path, final.TotalApproxCost); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing memo store: %v\n", err)
				return 1
			}
		}
		printPath(path, final.TotalApproxCost, false)
		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprintf(os.Stderr, "solved in %s\n", humanize.RelTime(start, time.Now(), "", ""))
		}
		return 0
	case smodel.NoSolution:
		fmt.Fprintln(os.Stderr, "no solution found")
		return 1
	case smodel.Cancelled:
		fmt.Fprintln(os.Stderr, "search cancelled")
		return 1
	}
	return 0
}

func printPath(path string, cost int, fromCache bool) {
	if fromCache {
		fmt.Printf("%s\ncost: %s (cached)\n", path, humanize.Comma(int64(cost)))
		return
	}
	fmt.Printf("%s\ncost: %s\n", path, humanize.Comma(int64(cost)))
}

func runServe(args []string) int {
	addr := ":8080"
	for i, a := range args {
		if a == "--addr" && i+1 < len(args) {
			addr = args[i+1]
		}
	}

	logger := obslog.New("algex")
	srv := progress.NewServer(config.Default())
	logger.WithField("addr", addr).Info("algex serve listening")
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("algex - cost-directed algebraic simplifier")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  algex simplify \"<expr>\"    Simplify an expression and print its path   (alias: s)")
	fmt.Println("  algex trace \"<expr>\"       Simplify, printing every frontier pop        (alias: t)")
	fmt.Println("  algex serve [--addr host:port]  Start the live progress daemon")
	fmt.Println()
	fmt.Println("Options (simplify, trace):")
	fmt.Println("  -O, --set key=value        Override a cost table constant")
	fmt.Println("  --memo <path>              Cache results in a SQLite file")
	fmt.Println("  --step-limit <n>           Bound the number of expansion steps")
	fmt.Println("  --cost-ceiling <n>         Abandon paths exceeding this total cost")
	fmt.Println()
	fmt.Println("Help:")
	fmt.Println("  algex help <command>       Show detailed help for a command")
	fmt.Println("  algex --version            Show version")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println(`  algex simplify "-4 + 3*4 + x + y - 3 + 5y"`)
	fmt.Println(`  algex trace "x^2 * x^3"`)
	fmt.Println("  algex serve --addr :9090")
}

func showVersion() {
	fmt.Printf("algex %s\n", version)
}

var commandHelp = map[string]string{
	"simplify": `algex simplify - simplify an expression

USAGE:
  algex simplify "<expr>" [options]
  algex s "<expr>"                # using alias

DESCRIPTION:
  Parses expr, runs the cost-directed search, and prints the winning
  transform-by-transform path, the final expression written out in full,
  and its total cost.

OPTIONS:
  -O, --set key=value        Override a cost table constant
  --memo <path>              Cache results in a SQLite file
  --step-limit <n>           Bound the number of expansion steps
  --cost-ceiling <n>         Abandon paths exceeding this total cost

EXAMPLES:
  algex simplify "3*4 + x - x"
  algex s "5y + 2y" --memo cache.db`,

	"trace": `algex trace - simplify while printing every frontier pop

USAGE:
  algex trace "<expr>"
  algex t "<expr>"                # using alias

DESCRIPTION:
  Like simplify, but prints every Model popped from the search frontier to
  stderr as it happens, not just the winning path -- useful for seeing why
  the search took the steps it did.`,

	"serve": `algex serve - start the live progress daemon

USAGE:
  algex serve [--addr host:port]

DESCRIPTION:
  Starts an HTTP server exposing POST /simplify and GET /ws?session=<id>,
  streaming one frame per popped Model to any subscribed websocket client
  for the duration of that search.`,
}

func showCommandHelp(command string) {
	if alias, ok := commandAliases[command]; ok {
		command = alias
	}
	if help, ok := commandHelp[command]; ok {
		fmt.Println(help)
		return
	}
	fmt.Printf("No detailed help available for '%s'\n", command)
	fmt.Println("\nRun 'algex help' to see all available commands")
}

func suggestCommand(cmd string) int {
	all := []string{"simplify", "trace", "serve", "help", "version"}
	fmt.Fprintf(os.Stderr, "Error: Unknown command '%s'\n", cmd)

	var suggestions []string
	for _, c := range all {
		if levenshtein(cmd, c) <= 3 {
			suggestions = append(suggestions, c)
		}
	}
	if len(suggestions) > 0 {
		fmt.Fprintln(os.Stderr, "\nDid you mean one of these?")
		for _, s := range suggestions {
			fmt.Fprintf(os.Stderr, "  algex %s\n", s)
		}
	}
	fmt.Fprintln(os.Stderr, "\nRun 'algex help' to see all available commands")
	return 1
}

func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = minOf(matrix[i-1][j]+1, matrix[i][j-1]+1, matrix[i-1][j-1]+cost)
		}
	}
	return matrix[len(s1)][len(s2)]
}

func minOf(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
