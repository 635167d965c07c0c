package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallfetch/wallfetch/pkg/download"
	wallhttp "github.com/wallfetch/wallfetch/pkg/http"
	"github.com/wallfetch/wallfetch/pkg/util/console"
	"github.com/wallfetch/wallfetch/pkg/wallpaper"
)

var setIndex int

func newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Download one wallpaper and set it as the desktop background",
		RunE:  setWallpaper,
		Args:  cobra.NoArgs,
	}

	cmd.Flags().IntVar(&setIndex, "index", 0, "Which image of the batch to use, starting at 0")
	cmd.Flags().StringVarP(&downloadOutputDir, "output-dir", "o", "", "Output directory (default "+defaultOutputDir+")")

	return cmd
}

func setWallpaper(cmd *cobra.Command, args []string) error {
	records, err := fetchRecords(cmd)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("the delivery API returned no images")
	}
	if setIndex < 0 || setIndex >= len(records) {
		return fmt.Errorf("index %d out of range, the batch has %d images", setIndex, len(records))
	}
	record := records[setIndex]

	outDir, err := resolveOutputDir()
	if err != nil {
		return err
	}

	path, err := download.New(wallhttp.ProvideHTTPClient()).One(cmd.Context(), record, outDir)
	if err != nil {
		return err
	}

	if err := wallpaper.Set(path); err != nil {
		return err
	}

	console.Infof("Wallpaper set to %s", path)
	if record.Title != "" {
		console.Info(record.Title)
	}
	if record.Copyright != "" {
		console.Info(record.Copyright)
	}
	return nil
}
