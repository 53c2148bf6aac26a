package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/standup/internal/standup"
)

// rangeFlags selects entries across month files.
type rangeFlags struct {
	from string
	to   string
	all  bool
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "First date in YYYY-MM-DD (default: start of the month of --date)")
	cmd.Flags().StringVar(&r.to, "to", "", "Last date in YYYY-MM-DD (default: end of the month of --date)")
	cmd.Flags().BoolVar(&r.all, "all", false, "Include every month file")
}

func (r *rangeFlags) resolve(date time.Time) (time.Time, time.Time, error) {
	return dateRange(r.from, r.to, r.all, date)
}

func newListCommand(s *session) *cobra.Command {
	var (
		rf       rangeFlags
		jsonFlag bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries across a range of dates.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := rf.resolve(s.date)
			if err != nil {
				return err
			}
			list, err := s.collectEntries(from, to)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(cmd.OutOrStdout(), list)
			}
			if list.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), describeRange("No entries", from, to))
				return nil
			}
			return s.printEntries(cmd.OutOrStdout(), list)
		},
	}

	rf.register(cmd)
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit entries as a JSON object keyed by date")

	return cmd
}

func newSearchCommand(s *session) *cobra.Command {
	var (
		rf            rangeFlags
		sections      []string
		caseSensitive bool
		jsonFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search tasks by text within the month.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(args[0])
			if term == "" {
				return fmt.Errorf("term is required")
			}
			from, to, err := rf.resolve(s.date)
			if err != nil {
				return err
			}

			wanted := standup.Sections()
			if len(sections) > 0 {
				wanted = wanted[:0]
				for _, name := range sections {
					section, err := standup.ParseSection(strings.ToLower(name))
					if err != nil {
						return fmt.Errorf("--section: %w", err)
					}
					wanted = append(wanted, section)
				}
			}

			list, err := s.collectEntries(from, to)
			if err != nil {
				return err
			}
			results := searchEntries(list, term, wanted, caseSensitive)
			if jsonFlag {
				return printJSON(cmd.OutOrStdout(), results)
			}
			return printSearchResults(cmd, term, from, to, results)
		},
	}

	rf.register(cmd)
	cmd.Flags().StringSliceVar(&sections, "section", nil, "Limit matches to these sections")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match term with case sensitivity")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit results as JSON objects")

	return cmd
}

type searchResult struct {
	Date    string `json:"date"`
	Section string `json:"section"`
	Task    string `json:"task"`
}

// searchEntries returns matching tasks, most recent entry first and in
// section order within an entry.
func searchEntries(list *standup.EntryList, term string, sections []standup.Section, caseSensitive bool) []searchResult {
	needle := term
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}

	results := []searchResult{}
	for _, entry := range list.SortReverse().Entries() {
		for _, section := range standup.Sections() {
			if !slices.Contains(sections, section) {
				continue
			}
			for _, task := range entry.Tasks(section) {
				haystack := task
				if !caseSensitive {
					haystack = strings.ToLower(haystack)
				}
				if strings.Contains(haystack, needle) {
					results = append(results, searchResult{
						Date:    entry.Date.Format(standup.DateLayout),
						Section: section.String(),
						Task:    task,
					})
				}
			}
		}
	}
	return results
}

func printSearchResults(cmd *cobra.Command, term string, from, to time.Time, results []searchResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, describeRange(fmt.Sprintf("Results for %q", term), from, to))
	if len(results) == 0 {
		fmt.Fprintln(out, "(no matches)")
		return nil
	}
	for _, res := range results {
		fmt.Fprintf(out, "%s %s: %s\n", res.Date, res.Section, res.Task)
	}
	return nil
}

func describeRange(prefix string, from, to time.Time) string {
	switch {
	case from.IsZero() && to.IsZero():
		return prefix
	case from.IsZero():
		return fmt.Sprintf("%s through %s", prefix, to.Format(standup.DateLayout))
	case to.IsZero():
		return fmt.Sprintf("%s since %s", prefix, from.Format(standup.DateLayout))
	}
	return fmt.Sprintf("%s between %s and %s", prefix, from.Format(standup.DateLayout), to.Format(standup.DateLayout))
}
