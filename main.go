package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"minano/editor"
	"minano/terminal"
	"minano/version"
)

var enableLog bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minano [file]",
	Short: "A tiny single-buffer terminal text editor",
	Long: `minano is a line-oriented text editor for the terminal.
Ctrl-S saves, Ctrl-O opens a file, Ctrl-X exits.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if enableLog {
			f, err := os.OpenFile("minano.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			log.SetOutput(f)
			log.Println("--- minano started ---")
		} else {
			log.SetOutput(io.Discard)
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		term := terminal.New()
		e := editor.New(term)
		if err := e.Run(path); err != nil {
			log.Printf("fatal: %v", err)
			return err
		}
		log.Println("--- minano exited cleanly ---")
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&enableLog, "log", false, "write a debug log to minano.log")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
