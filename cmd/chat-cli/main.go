// Package main is the entry point for the chat-cli application.
// It initializes the root command and registers the account and message
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/ahmedali8/near-bootcamp-project/cmd/chat-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "chat-cli",
		Short: "On-chain style chat CLI tool",
		Long: `chat-cli is a command-line tool for the chat service.
Supports account registration, friendships, sending messages and reading
chat histories against a local sqlite database or a postgres instance.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register account commands
	if err := commands.InitAccountCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize account commands: %w", err)
	}

	// Register message commands
	if err := commands.InitMessageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize message commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
