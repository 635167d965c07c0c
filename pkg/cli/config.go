package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallfetch/wallfetch/pkg/settings"
	"github.com/wallfetch/wallfetch/pkg/spotlight"
	"github.com/wallfetch/wallfetch/pkg/util/console"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Save the given flags as defaults, or show the saved defaults",
		Long: `Save the given flags as defaults, or show the saved defaults.

For example, "wallfetch config --locale en-GB --api-version v3" makes every
later run use the British English v3 feed unless overridden.`,
		RunE: runConfig,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&downloadOutputDir, "output-dir", "o", "", "Default output directory")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	userSettings, err := settings.LoadUserSettings()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("locale") || localeFlag != "" {
		userSettings.Locale = localeFlag
		changed = true
	}
	if apiVersionFlag != "" {
		if _, err := spotlight.ParseVersion(apiVersionFlag); err != nil {
			return err
		}
		userSettings.APIVersion = apiVersionFlag
		changed = true
	}
	if downloadOutputDir != "" {
		userSettings.OutputDir = downloadOutputDir
		changed = true
	}
	if attemptsFlag > 0 {
		userSettings.Attempts = attemptsFlag
		changed = true
	}

	if !changed {
		console.Output("locale:      " + orUnset(userSettings.Locale))
		console.Output("apiVersion:  " + orUnset(userSettings.APIVersion))
		console.Output("outputDir:   " + orUnset(userSettings.OutputDir))
		if userSettings.Attempts > 0 {
			console.Output(fmt.Sprintf("attempts:    %d", userSettings.Attempts))
		} else {
			console.Output("attempts:    (default)")
		}
		return nil
	}

	if err := userSettings.Save(); err != nil {
		return err
	}
	console.Info("Settings saved")
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
