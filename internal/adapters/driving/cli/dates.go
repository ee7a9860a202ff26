package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/dateformat"
)

var (
	datesFrom string
	datesTo   string
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Work with provider timestamp formats",
}

var datesFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported timestamp formats",
	Args:  cobra.NoArgs,
	RunE:  runDatesFormats,
}

var datesConvertCmd = &cobra.Command{
	Use:   "convert [timestamp]",
	Short: "Convert a timestamp between formats",
	Long: `Parses a timestamp in the --from format and prints it in the --to format.

Example:
  cloudkit dates convert --from c --to iso8601 "Thu Dec 01 16:32:25 +0000 2011"`,
	Args: cobra.ExactArgs(1),
	RunE: runDatesConvert,
}

func init() {
	datesConvertCmd.Flags().StringVar(&datesFrom, "from", string(domain.DateFormatISO8601), "format of the input")
	datesConvertCmd.Flags().StringVar(&datesTo, "to", string(domain.DateFormatC), "format of the output")
	datesCmd.AddCommand(datesFormatsCmd)
	datesCmd.AddCommand(datesConvertCmd)
	rootCmd.AddCommand(datesCmd)
}

func runDatesFormats(cmd *cobra.Command, _ []string) error {
	m, err := loadModule()
	if err != nil {
		return err
	}
	active := m.Dates().Name()

	for _, f := range []domain.DateFormat{domain.DateFormatISO8601, domain.DateFormatC} {
		marker := " "
		if f == active {
			marker = "*"
		}
		cmd.Printf("%s %-8s %s\n", marker, f, f.Description())
	}
	return nil
}

func runDatesConvert(cmd *cobra.Command, args []string) error {
	from, err := dateformat.New(domain.DateFormat(datesFrom))
	if err != nil {
		return err
	}
	to, err := dateformat.New(domain.DateFormat(datesTo))
	if err != nil {
		return err
	}

	t, err := from.Parse(args[0])
	if err != nil {
		return err
	}
	cmd.Println(to.Format(t))
	return nil
}
