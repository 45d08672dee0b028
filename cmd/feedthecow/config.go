package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jadedm/feed-the-cow/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or check the game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with.

Without --config this is the first of ~/.feedthecow/cow.yaml,
./configs/cow.yaml and the built-in defaults. Use --default to print
the built-in file with its comments.`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigCheck,
}

var flagDefault bool

func init() {
	configShowCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	if flagDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigCheck(_ *cobra.Command, args []string) {
	if _, err := config.LoadCow(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", args[0])
}
