// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/woozymasta/attrprops"
)

var version = "dev"

var (
	configFlag  string
	formatFlag  int
	verboseFlag bool

	nameColor = color.New(color.FgCyan)
	autoColor = color.New(color.FgGreen)
	noteColor = color.New(color.FgYellow)
)

// rootCmd is the root command for attrprops.
var rootCmd = &cobra.Command{
	Use:     "attrprops",
	Version: version,
	Short:   "Translate git attribute rules into svn-style path properties",
	Long: `attrprops reads a .gitattributes rule file and prints the path-scoped
properties (mime-type, eol-style, needs-lock, filter) it derives for a
property-based version control layer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// translateCmd translates one attributes file and prints derived properties.
var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate one attributes file and print derived properties",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&configFlag, "config", "c", "",
		"repository format config file (TOML)")
	translateCmd.Flags().IntVarP(&formatFlag, "format", "f", 0,
		"repository format version, overrides config")
	translateCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable debug logging")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	logger := newLogger(verboseFlag)

	cfg := attrprops.DefaultConfig()
	if configFlag != "" {
		loaded, err := attrprops.LoadConfig(configFlag)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	formatVersion := cfg.Version()
	if formatFlag > 0 {
		formatVersion = attrprops.FormatVersion(formatFlag)
	}

	path := cfg.AttributesFile
	if len(args) == 1 {
		path = args[0]
	}

	logger.Debug().
		Str("file", path).
		Int("format", int(formatVersion)).
		Msg("translating attributes file")

	props, err := attrprops.TranslateFile(path, attrprops.TranslateOptions{
		Version: formatVersion,
		Logger:  &logger,
	})
	if err != nil {
		return err
	}

	printProperties(cmd, props)
	return nil
}

// printProperties prints one derived property per line.
func printProperties(cmd *cobra.Command, props []attrprops.Property) {
	out := cmd.OutOrStdout()

	for _, p := range props {
		switch v := p.(type) {
		case attrprops.FileProperty:
			if v.HasValue {
				fmt.Fprintf(out, "%-24s %s = %s\n",
					v.Pattern, nameColor.Sprint(v.Name), v.Value)
			} else {
				fmt.Fprintf(out, "%-24s %s %s\n",
					v.Pattern, nameColor.Sprint(v.Name), noteColor.Sprint("(clear)"))
			}
		case attrprops.AutoProperty:
			fmt.Fprintf(out, "%-24s %s = %s %s\n",
				v.Pattern, nameColor.Sprint(v.Name), v.Value, autoColor.Sprint("(auto)"))
		case attrprops.FilterProperty:
			fmt.Fprintf(out, "%-24s %s = %s\n",
				v.Pattern, nameColor.Sprint("filter"), v.Filter)
		}
	}
}

// newLogger builds a console logger with verbosity mapping.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
