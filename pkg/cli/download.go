package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/wallfetch/wallfetch/pkg/download"
	wallhttp "github.com/wallfetch/wallfetch/pkg/http"
	"github.com/wallfetch/wallfetch/pkg/settings"
	"github.com/wallfetch/wallfetch/pkg/util/console"
	"github.com/wallfetch/wallfetch/pkg/util/files"
)

const defaultOutputDir = "~/Pictures/wallfetch"

var (
	downloadOutputDir string
	downloadLimit     int
)

func newDownloadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the current wallpaper batch",
		RunE:  downloadBatch,
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&downloadOutputDir, "output-dir", "o", "", "Output directory (default "+defaultOutputDir+")")
	cmd.Flags().IntVar(&downloadLimit, "limit", 0, "Download at most this many images")

	return cmd
}

func downloadBatch(cmd *cobra.Command, args []string) error {
	outDir, err := resolveOutputDir()
	if err != nil {
		return err
	}

	records, err := fetchRecords(cmd)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		console.Warn("The delivery API returned no images")
		return nil
	}
	if downloadLimit > 0 && downloadLimit < len(records) {
		records = records[:downloadLimit]
	}

	downloader := download.New(wallhttp.ProvideHTTPClient())
	paths, err := downloader.All(cmd.Context(), records, outDir)
	if err != nil {
		return err
	}

	console.Infof("Downloaded %d images to %s", len(paths), outDir)
	for _, path := range paths {
		console.Output(path)
	}
	return nil
}

func resolveOutputDir() (string, error) {
	dir := downloadOutputDir
	if dir == "" {
		userSettings, err := settings.LoadUserSettings()
		if err != nil {
			return "", err
		}
		dir = userSettings.OutputDir
	}
	if dir == "" {
		dir = defaultOutputDir
	}

	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	exists, err := files.Exists(dir)
	if err != nil {
		return "", err
	}
	if exists {
		isDir, err := files.IsDir(dir)
		if err != nil {
			return "", err
		}
		if !isDir {
			return "", fmt.Errorf("%s already exists and is not a directory", dir)
		}
	}
	return dir, nil
}
