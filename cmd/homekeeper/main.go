package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/perora/homekeeper/internal/agent"
	"github.com/perora/homekeeper/internal/datadir"
	"github.com/perora/homekeeper/internal/provider"
	"github.com/perora/homekeeper/memory"
	"github.com/perora/homekeeper/store"
	"github.com/perora/homekeeper/tools"
)

func main() {
	logger := log.New(os.Stderr)

	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	itemsPath, err := datadir.Path("items.json")
	if err != nil {
		logger.Fatal("resolve data dir", "err", err)
	}
	transcriptPath, err := datadir.Path("transcript.json")
	if err != nil {
		logger.Fatal("resolve data dir", "err", err)
	}

	st := store.Open(itemsPath, store.WithLogger(logger))

	// Load prior conversation if it exists
	persisted, err := memory.LoadTranscript(transcriptPath)
	if err != nil {
		logger.Warn("failed to load persisted transcript", "err", err)
	}
	hist := memory.NewHistory(persisted)

	loop := agent.New(
		provider.NewClient(),
		provider.Model(),
		tools.NewRegistry(st),
		hist,
		agent.WithCallbacks(agent.Callbacks{
			OnContent: func(delta, full string) { fmt.Print(delta) },
			OnStatus:  func(status string) { fmt.Printf("\n\u001b[90m· %s\u001b[0m\n", status) },
		}),
	)

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Homekeeper — chat about your household items (Ctrl-C to quit)")
	fmt.Println("Commands: /export <file>, /import <file>")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94mYou\u001b[0m: ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case line, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			runCommand(st, logger, line)
			continue
		}

		fmt.Print("\u001b[93mHomekeeper\u001b[0m: ")
		if err := loop.Submit(ctx, line); err != nil {
			if errors.Is(err, agent.ErrBusy) {
				logger.Warn("a request is already running; input ignored")
				continue
			}
			fmt.Println("\n\u001b[91m✗ request failed\u001b[0m")
			logger.Error("request failed", "err", err)
		} else {
			fmt.Println()
		}

		if err := memory.SaveTranscript(transcriptPath, hist.Messages()); err != nil {
			logger.Warn("failed to save transcript", "err", err)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("stdin read error", "err", err)
	}
}

// runCommand handles the operator-only slash commands that bypass the
// model: full-snapshot export and import.
func runCommand(st *store.Store, logger *log.Logger, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/export":
		if len(fields) != 2 {
			fmt.Println("usage: /export <file>")
			return
		}
		data, err := st.ExportData()
		if err != nil {
			logger.Error("export failed", "err", err)
			return
		}
		if err := os.WriteFile(fields[1], data, 0o644); err != nil {
			logger.Error("export failed", "err", err)
			return
		}
		fmt.Printf("Exported %d items to %s\n", len(st.Items()), fields[1])
	case "/import":
		if len(fields) != 2 {
			fmt.Println("usage: /import <file>")
			return
		}
		data, err := os.ReadFile(fields[1])
		if err != nil {
			logger.Error("import failed", "err", err)
			return
		}
		if !st.ImportData(data) {
			fmt.Println("Import rejected: file is not a JSON array of items.")
			return
		}
		fmt.Printf("Imported %d items from %s\n", len(st.Items()), fields[1])
	default:
		fmt.Printf("Unknown command %s\n", fields[0])
	}
}
