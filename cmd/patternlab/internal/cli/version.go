package cli

import (
	"github.com/spf13/cobra"

	"patternlab/internal/version"
)

// addVersionCommand adds the version command.
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the version of patternlab with build information.

With --require, check the version against a semantic version constraint
such as ">= 0.1, < 1" and exit 1 when it is not met.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			detailed, _ := cmd.Flags().GetBool("detailed")
			constraint, _ := cmd.Flags().GetString("require")

			if detailed {
				app.printf("%s\n", version.GetDetailedVersion())
			} else {
				app.printf("%s\n", version.GetFormattedVersion())
			}

			if constraint == "" {
				return nil
			}
			ok, err := version.Satisfies(constraint)
			if err != nil {
				return usageError("%v", err)
			}
			if !ok {
				return &ExitError{Code: ExitFailure, Message: "version " + version.Version + " does not satisfy " + constraint}
			}
			return nil
		},
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")
	versionCmd.Flags().String("require", "", "Fail unless the version satisfies this constraint")
	rootCmd.AddCommand(versionCmd)
}
