package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kampdata/internal/teams"
)

func newTeamsCommand(ctx *commandContext) *cobra.Command {
	teamsCmd := &cobra.Command{
		Use:   "teams",
		Short: "Club alias table utilities",
	}

	teamsCmd.AddCommand(newTeamsListCommand(ctx))
	teamsCmd.AddCommand(newTeamsResolveCommand(ctx))

	return teamsCmd
}

func newTeamsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known clubs and their accepted spellings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			table := resolver.Table()

			codes := table.Codes()
			collator := collate.New(language.Danish)
			sort.SliceStable(codes, func(i, j int) bool {
				left, _ := table.Name(codes[i])
				right, _ := table.Name(codes[j])
				return collator.CompareString(left, right) < 0
			})

			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				entry, ok := table.Entry(code)
				if !ok {
					continue
				}
				rows = append(rows, []string{code, entry.Name, strings.Join(entry.Aliases, ", ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Code", "Club", "Aliases"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newTeamsResolveCommand(ctx *commandContext) *cobra.Command {
	var fromFilename bool

	cmd := &cobra.Command{
		Use:   "resolve <name or filename> [more...]",
		Short: "Resolve club spellings or report filenames to club codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			var misses int
			for _, arg := range args {
				if fromFilename {
					matchup, err := teams.ParseFilename(arg)
					if err != nil {
						misses++
						fmt.Fprintln(out, renderStatusLine(arg, statusError, err.Error(), colorize))
						continue
					}
					misses += printResolution(out, matchup.Home, resolver, colorize)
					misses += printResolution(out, matchup.Away, resolver, colorize)
					continue
				}
				misses += printResolution(out, arg, resolver, colorize)
			}
			if misses > 0 {
				return fmt.Errorf("%d names could not be resolved", misses)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromFilename, "filename", false, "Treat arguments as report filenames")
	return cmd
}

func printResolution(out io.Writer, name string, resolver *teams.Resolver, colorize bool) int {
	code, ok := resolver.Code(name)
	if !ok {
		fmt.Fprintln(out, renderStatusLine(name, statusWarn, "unknown club", colorize))
		return 1
	}
	full, _ := resolver.Name(name)
	fmt.Fprintln(out, renderStatusLine(name, statusOK, code+" ("+full+")", colorize))
	return 0
}
