// ABOUTME: Entry point for the communication calendar
// ABOUTME: Loads configuration, opens the store, and routes to CLI, MCP, TUI, or web
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Sankar2i/calendar/cli"
	"github.com/Sankar2i/calendar/config"
	"github.com/Sankar2i/calendar/db"
	"github.com/Sankar2i/calendar/logging"
	"github.com/Sankar2i/calendar/store"
	"github.com/Sankar2i/calendar/tui"
	"github.com/Sankar2i/calendar/web"
)

const version = "0.1.0"

type command func(s *store.Store, args []string) error

var adminCommands = map[string]command{
	"add-company":    cli.AddCompanyCommand,
	"list-companies": cli.ListCompaniesCommand,
	"update-company": cli.UpdateCompanyCommand,
	"delete-company": cli.DeleteCompanyCommand,
	"add-method":     cli.AddMethodCommand,
	"list-methods":   cli.ListMethodsCommand,
	"update-method":  cli.UpdateMethodCommand,
	"move-method":    cli.MoveMethodCommand,
	"delete-method":  cli.DeleteMethodCommand,
}

var userCommands = map[string]command{
	"dashboard":      cli.DashboardCommand,
	"calendar":       cli.CalendarCommand,
	"notifications":  cli.NotificationsCommand,
	"log":            cli.LogCommand,
	"history":        cli.HistoryCommand,
	"override":       cli.OverrideCommand,
	"clear-override": cli.ClearOverrideCommand,
	"export-ics":     cli.ExportICSCommand,
}

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/calendar/calendar.db)")
	configPath := flag.String("config", "", "Config file (default: ~/.config/calendar/config.yaml)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("calendar version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(logging.New(zerolog.WarnLevel, os.Stderr), err, "failed to load config")
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := logging.New(cfg.Level(), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "admin", "user":
		table := adminCommands
		if command == "user" {
			table = userCommands
		}
		if len(commandArgs) == 0 {
			fmt.Printf("Error: %s requires a subcommand\n\n", command)
			printUsage()
			os.Exit(1)
		}
		run, ok := table[commandArgs[0]]
		if !ok {
			fmt.Printf("Unknown %s command: %s\n\n", command, commandArgs[0])
			printUsage()
			os.Exit(1)
		}

		database, s := openStore(ctx, cfg, logger)
		err := run(s, commandArgs[1:])
		_ = database.Close()
		if err != nil {
			fatal(logger, err, "command failed")
		}

	case "mcp":
		// stderr is captured by the MCP client
		logger = logging.NewJSON(cfg.Level(), os.Stderr)
		database, s := openStore(ctx, cfg, logger)
		defer func() { _ = database.Close() }()

		if err := cli.MCPCommand(ctx, s, version, logger); err != nil {
			fatal(logger, err, "MCP server failed")
		}

	case "tui":
		database, s := openStore(ctx, cfg, logger)
		defer func() { _ = database.Close() }()

		if err := tui.Run(ctx, s); err != nil {
			fatal(logger, err, "TUI failed")
		}

	case "web":
		fs := flag.NewFlagSet("web", flag.ExitOnError)
		port := fs.Int("port", cfg.WebPort, "Port to listen on")
		_ = fs.Parse(commandArgs)

		database, s := openStore(ctx, cfg, logger)
		defer func() { _ = database.Close() }()

		srv, err := web.NewServer(s, logger)
		if err != nil {
			fatal(logger, err, "failed to create web server")
		}
		fmt.Printf("Calendar web UI at http://localhost:%d\n", *port)
		if err := srv.Start(ctx, *port); err != nil {
			fatal(logger, err, "web server failed")
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*sql.DB, *store.Store) {
	database, err := db.OpenDatabase(cfg.DBPath)
	if err != nil {
		fatal(logger, err, "failed to open database")
	}
	logger.Debug().Str("path", cfg.DBPath).Msg("database opened")

	s, err := store.Open(ctx, db.NewSnapshotRepository(database),
		store.WithLocation(cfg.Location()),
		store.WithAnchor(cfg.ScheduleAnchor()),
		store.WithLogger(logger),
	)
	if err != nil {
		_ = database.Close()
		fatal(logger, err, "failed to load state")
	}
	return database, s
}

func fatal(logger zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	os.Exit(1)
}

func commandNames(table map[string]command) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printUsage() {
	fmt.Printf(`calendar v%s - communication cadence tracker

USAGE:
  calendar [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/calendar/calendar.db)
  --config <path>        Config file (default: ~/.config/calendar/config.yaml)

COMMANDS:
  admin <subcommand>     Manage companies and communication methods
  user <subcommand>      Dashboard, calendar, and communication logging
  mcp                    Start MCP server on stdio
  tui                    Start the terminal UI
  web [--port <n>]       Start the web UI (default port from config, 8080)

ADMIN SUBCOMMANDS:
  %v

USER SUBCOMMANDS:
  %v

EXAMPLES:
  calendar admin add-company --name "Acme" --location "Paris" --periodicity "2 weeks"
  calendar user log --company Acme --type Email --notes "quarterly check-in"
  calendar user dashboard
  calendar user export-ics --output schedule.ics

ENVIRONMENT:
  CALENDAR_DB_PATH, CALENDAR_ANCHOR (now|last_communication),
  CALENDAR_LOG_LEVEL, CALENDAR_TIMEZONE, CALENDAR_WEB_PORT

`, version, commandNames(adminCommands), commandNames(userCommands))
}
