package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oasslice/oasslice"
	"github.com/oasslice/oasslice/internal/mcpserver"
	"github.com/oasslice/oasslice/parser"
	"github.com/oasslice/oasslice/slicer"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasslice v%s\n", oasslice.Version())
	case "help", "-h", "--help":
		printUsage()
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "endpoints":
		if err := handleEndpoints(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "slice":
		if err := handleSlice(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var commandNames = []string{"mcp", "endpoints", "slice", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func setupEndpointsFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("endpoints", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasslice endpoints <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "List all endpoints in an OpenAPI specification, in document order.\n\n")
		_, _ = fmt.Fprintf(output, "Examples:\n")
		_, _ = fmt.Fprintf(output, "  oasslice endpoints openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasslice endpoints https://example.com/api/openapi.yaml\n")
	}

	return fs
}

func handleEndpoints(args []string) error {
	fs := setupEndpointsFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("endpoints command requires exactly one file path or URL")
	}

	doc, err := parser.New().Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	s := slicer.New()
	s.Load(doc)
	endpoints, err := s.Endpoints()
	if err != nil {
		return err
	}

	fmt.Printf("%s v%s: %d endpoints\n\n", doc.Title(), doc.Version(), len(endpoints))
	for _, ep := range endpoints {
		line := fmt.Sprintf("%-7s %s", ep.Method, ep.Path)
		if ep.Summary != "" {
			line += "  " + ep.Summary
		}
		fmt.Println(line)
	}

	return nil
}

// sliceFlags contains flags for the slice command
type sliceFlags struct {
	path   string
	method string
	format string
	output string
}

func setupSliceFlags() (*flag.FlagSet, *sliceFlags) {
	fs := flag.NewFlagSet("slice", flag.ContinueOnError)
	flags := &sliceFlags{}

	fs.StringVar(&flags.path, "path", "", "endpoint path, e.g. /pets/{petId} (required)")
	fs.StringVar(&flags.method, "method", "", "HTTP method, case-insensitive (required)")
	fs.StringVar(&flags.format, "format", "", "output format: yaml or json (default: same as input)")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasslice slice [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "Extract a minimal OpenAPI spec containing a single endpoint and the\n")
		_, _ = fmt.Fprintf(output, "component schemas it transitively references.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasslice slice -path /pets -method get openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasslice slice -path '/pets/{petId}' -method get -format json openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasslice slice -path /pets -method post -o pets-post.yaml openapi.yaml\n")
	}

	return fs, flags
}

func handleSlice(args []string) error {
	fs, flags := setupSliceFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("slice command requires exactly one file path or URL")
	}

	if flags.path == "" || flags.method == "" {
		fs.Usage()
		return fmt.Errorf("both -path and -method are required")
	}

	format, ok := parser.ParseFormat(flags.format)
	if !ok {
		return fmt.Errorf("invalid format '%s'. Valid formats: yaml, json", flags.format)
	}

	doc, err := parser.New().Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	s := slicer.New()
	s.Load(doc)

	slice, err := s.Extract(flags.path, flags.method)
	if err != nil {
		return err
	}

	if flags.format == "" {
		format = slice.SourceFormat
		if format != parser.SourceFormatJSON {
			format = parser.SourceFormatYAML
		}
	}

	data, err := slice.Marshal(format)
	if err != nil {
		return fmt.Errorf("marshaling slice: %w", err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Slice written to: %s\n", flags.output)
	} else {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing slice to stdout: %w", err)
		}
	}

	return nil
}

func printUsage() {
	fmt.Println(`oasslice - OpenAPI Endpoint Slicer

Usage:
  oasslice <command> [options]

Commands:
  mcp         Run the MCP server over stdio
  endpoints   List all endpoints in an OpenAPI specification
  slice       Extract a minimal single-endpoint spec
  version     Show version information
  help        Show this help message

Examples:
  oasslice mcp
  oasslice endpoints openapi.yaml
  oasslice slice -path /pets -method get openapi.yaml
  oasslice slice -path '/pets/{petId}' -method get -format json -o slice.json openapi.yaml

Run 'oasslice <command> --help' for more information on a command.`)
}
