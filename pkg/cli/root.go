package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallfetch/wallfetch/pkg/display"
	"github.com/wallfetch/wallfetch/pkg/global"
	wallhttp "github.com/wallfetch/wallfetch/pkg/http"
	"github.com/wallfetch/wallfetch/pkg/settings"
	"github.com/wallfetch/wallfetch/pkg/spotlight"
	"github.com/wallfetch/wallfetch/pkg/update"
	"github.com/wallfetch/wallfetch/pkg/util/console"
)

var (
	apiVersionFlag string
	localeFlag     string
	portraitFlag   bool
	landscapeFlag  bool
	attemptsFlag   int
)

func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "wallfetch",
		Short:   "Fetch Windows Spotlight wallpapers",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		// This stops errors being printed because we print them in cmd/wallfetch/main.go
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			cmd.SilenceUsage = true
			if err := update.DisplayAndCheckForRelease(); err != nil {
				console.Debugf("update check skipped: %s", err)
			}
		},
		SilenceErrors: true,
	}
	setPersistentFlags(&rootCmd)

	rootCmd.AddCommand(
		newFetchCommand(),
		newDownloadCommand(),
		newSetCommand(),
		newConfigCommand(),
	)

	return &rootCmd, nil
}

func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVar(&apiVersionFlag, "api-version", "", "Delivery API version, v3 or v4 (default v4)")
	cmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "Locale override, e.g. en-US (default: system locale)")
	cmd.PersistentFlags().BoolVar(&portraitFlag, "portrait", false, "Request portrait images")
	cmd.PersistentFlags().BoolVar(&landscapeFlag, "landscape", false, "Request landscape images")
	cmd.PersistentFlags().IntVar(&attemptsFlag, "attempts", 0, fmt.Sprintf("Fetch attempts before giving up (default %d)", global.DefaultAttempts))
}

// fetchOptions merges flags over saved user settings.
func fetchOptions() (spotlight.FetchOptions, error) {
	opts := spotlight.FetchOptions{}

	userSettings, err := settings.LoadUserSettings()
	if err != nil {
		return opts, err
	}

	opts.Locale = localeFlag
	if opts.Locale == "" {
		opts.Locale = userSettings.Locale
	}
	opts.Attempts = attemptsFlag
	if opts.Attempts == 0 {
		opts.Attempts = userSettings.Attempts
	}

	versionString := apiVersionFlag
	if versionString == "" {
		versionString = userSettings.APIVersion
	}
	if versionString != "" {
		version, err := spotlight.ParseVersion(versionString)
		if err != nil {
			return opts, fmt.Errorf("invalid API version %q, expected v3 or v4", versionString)
		}
		opts.Version = version
	}

	switch {
	case portraitFlag && landscapeFlag:
		return opts, fmt.Errorf("--portrait and --landscape are mutually exclusive")
	case portraitFlag:
		portrait := true
		opts.Portrait = &portrait
	case landscapeFlag:
		portrait := false
		opts.Portrait = &portrait
	}

	return opts, nil
}

// fetchRecords runs the full pipeline with the production transport and the
// global console as warning sink.
func fetchRecords(cmd *cobra.Command) ([]spotlight.ImageRecord, error) {
	opts, err := fetchOptions()
	if err != nil {
		return nil, err
	}

	client := spotlight.NewClient(wallhttp.NewFetcher(wallhttp.ProvideHTTPClient()), console.ConsoleInstance)
	client.PortraitDetect = display.PrimaryIsPortrait

	return client.Fetch(cmd.Context(), opts)
}
