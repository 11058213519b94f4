package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/littlefrontender/reporter/pkg/title"
)

// NewTitleCommand creates the title command.
func NewTitleCommand() *cobra.Command {
	var decamelizeOnly bool

	cmd := &cobra.Command{
		Use:   "title <identifier>...",
		Short: "Turn test identifiers into readable titles",
		Long: `Convert camelCase or snake_case test identifiers into readable display
titles. Leading "test"/"should" tokens and @T/@S ID tags are stripped.

Example:
  reporter title testUserCanLogin shouldReturnTrue
  reporter title --decamelize dataForUSACounties`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, arg := range args {
				if decamelizeOnly {
					fmt.Fprintln(cmd.OutOrStdout(), title.Decamelize(arg))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), title.Humanize(title.StripIDs(arg)))
			}
		},
	}

	cmd.Flags().BoolVarP(&decamelizeOnly, "decamelize", "d", false, "Print the separator-delimited form instead")

	return cmd
}
