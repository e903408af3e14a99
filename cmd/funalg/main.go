package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/funalg/internal/config"
	"github.com/funvibe/funalg/internal/gen"
)

// Version can be overridden at build time using:
// -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

const usageText = `funalg - Base wiring generator for algebraic interface derivation

Usage:
  funalg generate [options]      Generate *_algebra.gen.go wiring files
  funalg version                 Print version

Options:
  -c, --config <file>   Configuration file (default: funalg.yaml)
  -o, --out <dir>       Output directory (default: .)
  -m, --module <path>   funalg module import path override
  -h, --help            Show this help
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:])
	case "version", "-v", "--version":
		fmt.Printf("funalg %s\n", Version)
		return 0
	case "-h", "--help", "help":
		fmt.Print(usageText)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "%s unknown command %q\n\n", errorTag(), args[0])
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}
}

func runGenerate(args []string) int {
	cfgPath := config.ConfigFileName
	outDir := "."
	modulePath := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "--config":
			i++
			if i >= len(args) {
				fmt.Fprintf(os.Stderr, "%s missing value for %s\n", errorTag(), args[i-1])
				return 2
			}
			cfgPath = args[i]
		case "-o", "--out":
			i++
			if i >= len(args) {
				fmt.Fprintf(os.Stderr, "%s missing value for %s\n", errorTag(), args[i-1])
				return 2
			}
			outDir = args[i]
		case "-m", "--module":
			i++
			if i >= len(args) {
				fmt.Fprintf(os.Stderr, "%s missing value for %s\n", errorTag(), args[i-1])
				return 2
			}
			modulePath = args[i]
		case "-h", "--help":
			fmt.Print(usageText)
			return 0
		default:
			fmt.Fprintf(os.Stderr, "%s unknown option %q\n", errorTag(), args[i])
			return 2
		}
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s reading %s: %v\n", errorTag(), cfgPath, err)
		return 1
	}

	cfg, err := gen.ParseConfig(data, cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorTag(), err)
		return 1
	}

	files, err := gen.NewGenerator(modulePath).Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorTag(), err)
		return 1
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "%s creating %s: %v\n", errorTag(), outDir, err)
		return 1
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.Filename)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s writing %s: %v\n", errorTag(), path, err)
			return 1
		}
		fmt.Printf("%s %s\n", green("generated"), path)
	}
	fmt.Printf("%d wiring file(s) for %d type(s)\n", len(files), len(cfg.Types))
	return 0
}
