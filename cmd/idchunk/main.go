package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"idchunk/cmd/idchunk/commands"
	"idchunk/cmd/idchunk/opts"
)

func main() {
	// Environment files feed the IDCHUNK_* config overlay
	_ = godotenv.Load()

	ctx := log.Logger.WithContext(context.Background())

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "idchunk",
		Short: "Map ID-named folders, split them into chunks, and copy or move them",
		Long: `idchunk maps a list of identifiers to same-named subfolders of a source
directory, reports which identifiers are missing, splits the matched
identifiers into fixed-size chunks, and optionally saves chunk files or
copies/moves the chunk folders into a destination directory.`,
		SilenceUsage: true,
	}

	// Shared flags and options
	ro := &opts.RootOpts{}
	addRootFlags(rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return initRootOpts(cmd, ro)
	}

	// Add commands
	rootCmd.AddCommand(
		commands.NewMapCmd(ro),
		commands.NewChunkCmd(ro),
		commands.NewProcessCmd(ro),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
