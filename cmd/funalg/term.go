package main

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	colorOnce sync.Once
	colorOn   bool
)

func colorEnabled() bool {
	colorOnce.Do(func() {
		colorOn = detectColor()
	})
	return colorOn
}

func detectColor() bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	// Not a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

func colorize(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func green(s string) string {
	return colorize("32", s)
}

func red(s string) string {
	return colorize("31", s)
}

func errorTag() string {
	return red("error:")
}
