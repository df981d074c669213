// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

// Command crush is the reference driver for the CRUSH codec: a thin
// multi-block file framing (block.go) around package crush's single-block
// pack_level/depack calls (spec §6 "CLI surface of the reference driver").
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gocrush/crush"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		decompress bool
		verbose    bool
		optimal    bool
		levelFlags [5]bool
	)

	cmd := &cobra.Command{
		Use:   "crush [flags] INFILE OUTFILE",
		Short: "Pack or depack a file with the CRUSH codec",
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				return nil
			}

			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				fmt.Println("crush", version)
				return nil
			}

			if verbose {
				logrus.SetLevel(logrus.InfoLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}

			level, err := resolveLevel(optimal, levelFlags)
			if err != nil {
				return err
			}

			in, out, err := openInOut(args[0], args[1])
			if err != nil {
				return err
			}
			defer in.Close()
			defer out.Close()

			if decompress {
				return depackFile(out, in, verbose)
			}

			return packFile(out, in, level, verbose)
		},
	}

	cmd.Flags().BoolVarP(&decompress, "decompress", "d", false, "depack INFILE instead of packing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report per-block progress on stderr")
	cmd.Flags().BoolVar(&optimal, "optimal", false, "use level 10 (exhaustive, slowest, smallest output)")
	cmd.Flags().BoolP("version", "V", false, "print the version and exit")

	// -5..-9 select levels LevelFast..LevelTreeBest directly; level 10
	// (LevelOptimal) has no single-digit shorthand and is reached only
	// through --optimal (spec §6 "-5..-9 | --optimal").
	for i, level := range []int{crush.LevelFast, crush.LevelMedium, crush.LevelThorough, crush.LevelTreeGood, crush.LevelTreeBest} {
		name := fmt.Sprintf("level%d", level)
		shorthand := fmt.Sprintf("%d", level)
		cmd.Flags().BoolVarP(&levelFlags[i], name, shorthand, false, fmt.Sprintf("use level %d", level))
	}

	return cmd
}

// resolveLevel translates the mutually exclusive -5..-9/--optimal flags
// into a single crush.Level* constant, defaulting to LevelDefault when
// none are set (spec §6 CLI surface).
func resolveLevel(optimal bool, levelFlags [5]bool) (int, error) {
	levels := []int{crush.LevelFast, crush.LevelMedium, crush.LevelThorough, crush.LevelTreeGood, crush.LevelTreeBest}

	chosen := -1
	for i, set := range levelFlags {
		if !set {
			continue
		}
		if chosen != -1 {
			return 0, fmt.Errorf("only one level flag may be given")
		}
		chosen = levels[i]
	}

	if optimal {
		if chosen != -1 {
			return 0, fmt.Errorf("only one level flag may be given")
		}
		chosen = crush.LevelOptimal
	}

	if chosen == -1 {
		return crush.LevelDefault, nil
	}

	return chosen, nil
}
