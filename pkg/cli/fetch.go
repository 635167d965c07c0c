package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallfetch/wallfetch/pkg/util/console"
)

var fetchJSON bool

func newFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the current wallpaper batch and print it",
		RunE:  fetchBatch,
		Args:  cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&fetchJSON, "json", false, "Print records as JSON")

	return cmd
}

func fetchBatch(cmd *cobra.Command, args []string) error {
	records, err := fetchRecords(cmd)
	if err != nil {
		return err
	}

	if fetchJSON {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		console.Output(string(out))
		return nil
	}

	if len(records) == 0 {
		console.Warn("The delivery API returned no images")
		return nil
	}

	width, err := console.GetWidth()
	if err != nil {
		console.Debugf("error getting width of terminal: %s", err)
	}
	for _, record := range records {
		line := record.SourceURI
		if record.Title != "" {
			line = fmt.Sprintf("%s  (%s)", record.SourceURI, record.Title)
		}
		if width > 10 && len(line) > int(width) {
			line = line[:int(width)-3] + "..."
		}
		console.Output(line)
	}
	return nil
}
