package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cnlearn/cnlearn/internal/config"
	"github.com/cnlearn/cnlearn/internal/database"
	"github.com/cnlearn/cnlearn/internal/entrypoint"
	"github.com/cnlearn/cnlearn/internal/importer"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "import-dictionary":
		if err := runImport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runImport(args []string) error {
	flags := flag.NewFlagSet("import-dictionary", flag.ContinueOnError)
	filePath := flags.String("file", "", "path to the JSON dictionary file")
	dbPath := flags.String("db", "", "path to the sqlite database (defaults to DATABASE_PATH)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *filePath == "" {
		return fmt.Errorf("-file is required")
	}
	if *dbPath == "" {
		*dbPath = config.NewConfig().Database.Path
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := importer.New(db.DB).ImportFile(*filePath)
	if err != nil {
		return err
	}
	logrus.Infof("imported %d words, %d characters, %d links", stats.Words, stats.Characters, stats.Links)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve               Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import-dictionary   Bulk-load words and characters from a JSON file\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
