package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/graeme-hill/calcstuff-go/lib"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	historyPath := flag.String("history", defaultHistoryPath(), "path to the history database")
	noHistory := flag.Bool("no-history", false, "disable the evaluation history")
	flag.Parse()

	// One-shot mode: evaluate the arguments and exit.
	if flag.NArg() > 0 {
		result, err := lib.Eval(strings.Join(flag.Args(), " "))
		if err != nil {
			return err
		}
		fmt.Printf("%v\n", result)
		return nil
	}

	var history *lib.History
	if !*noHistory && *historyPath != "" {
		h, err := lib.OpenHistory(*historyPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			history = h
			defer history.Close()
		}
	}

	st := newStyles(term.IsTerminal(int(os.Stdout.Fd())))
	return repl(history, st)
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calc", "history.db")
}

type styles struct {
	prompt lipgloss.Style
	result lipgloss.Style
	errmsg lipgloss.Style
}

// newStyles returns colored styles on a terminal and pass-through styles
// when output is piped.
func newStyles(enabled bool) styles {
	if !enabled {
		plain := lipgloss.NewStyle()
		return styles{prompt: plain, result: plain, errmsg: plain}
	}
	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		result: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errmsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// repl reads one expression per line until an empty line or EOF.
func repl(history *lib.History, st styles) error {
	scanner := bufio.NewScanner(os.Stdin)
	prompt := st.prompt.Render("[>]")

	for {
		fmt.Printf("%s ", prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		switch line {
		case "quit", "exit":
			return scanner.Err()
		case "history":
			showHistory(history, st)
			continue
		case "clear":
			if err := history.Clear(); err != nil {
				fmt.Println(st.errmsg.Render("[E] " + err.Error()))
			}
			continue
		}

		result, err := lib.Eval(line)
		if err != nil {
			fmt.Println(st.errmsg.Render("[E] " + err.Error()))
			fmt.Println()
			continue
		}

		fmt.Println(st.result.Render(fmt.Sprintf("[=] %v", result)))
		fmt.Println()

		if err := history.Record(line, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot record history: %v\n", err)
		}
	}

	return scanner.Err()
}

func showHistory(history *lib.History, st styles) {
	entries, err := history.Recent(20)
	if err != nil {
		fmt.Println(st.errmsg.Render("[E] " + err.Error()))
		return
	}
	if len(entries) == 0 {
		fmt.Println("(empty)")
		return
	}

	// Oldest of the recent entries first, like a shell history.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Printf("%s  %s = %v\n", e.EvaluatedAt.Format("2006-01-02 15:04:05"), e.Expression, e.Result)
	}
}
