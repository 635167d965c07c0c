// Package download fetches image assets to local disk, verifying integrity
// metadata when the source API supplied it.
package download

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/sync/errgroup"

	"github.com/wallfetch/wallfetch/pkg/spotlight"
	"github.com/wallfetch/wallfetch/pkg/util"
)

const barNameWidth = 24

// Downloader saves image records to disk with a progress bar per file.
type Downloader struct {
	client *http.Client

	// Concurrency bounds how many files are fetched at once.
	Concurrency int
	// ProgressOutput receives the progress bars; defaults to stderr.
	// Tests set io.Discard.
	ProgressOutput io.Writer
}

func New(client *http.Client) *Downloader {
	return &Downloader{
		client:      client,
		Concurrency: 3,
	}
}

// All downloads every record into outDir and returns the local paths in
// record order. A record without a FileName gets a generated one. The first
// failure cancels the remaining downloads.
func (d *Downloader) All(ctx context.Context, records []spotlight.ImageRecord, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, util.WrapError(err, "failed to create output directory")
	}

	out := d.ProgressOutput
	if out == nil {
		out = os.Stderr
	}
	progress := mpb.NewWithContext(ctx, mpb.WithWidth(64), mpb.WithOutput(out))

	paths := make([]string, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.Concurrency)
	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			path, err := d.one(ctx, record, i, outDir, progress)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	progress.Wait()
	return paths, nil
}

// One downloads a single record into outDir and returns the local path.
func (d *Downloader) One(ctx context.Context, record spotlight.ImageRecord, outDir string) (string, error) {
	paths, err := d.All(ctx, []spotlight.ImageRecord{record}, outDir)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

func (d *Downloader) one(ctx context.Context, record spotlight.ImageRecord, index int, outDir string, progress *mpb.Progress) (string, error) {
	name := record.FileName
	if name == "" {
		name = fmt.Sprintf("spotlight-%03d.jpg", index+1)
	}
	dest := filepath.Join(outDir, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, record.SourceURI, nil)
	if err != nil {
		return "", util.WrapError(err, "failed to create download request")
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", util.WrapError(err, "failed to download "+record.SourceURI)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: unexpected status %d", record.SourceURI, resp.StatusCode)
	}

	total := resp.ContentLength
	if total < 0 {
		total = record.SizeBytes
	}
	bar := progress.New(total,
		mpb.BarStyle().Rbound("|"),
		mpb.PrependDecorators(
			decor.Name(barName(name)+" "),
			decor.Counters(decor.SizeB1024(0), "% .1f / % .1f"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	defer bar.Abort(false)

	hash := sha256.New()
	buff := bytes.NewBuffer([]byte{})
	reader := bar.ProxyReader(resp.Body)
	defer reader.Close()

	size, err := io.Copy(io.MultiWriter(buff, hash), reader)
	if err != nil {
		return "", util.WrapError(err, "failed to read image data")
	}
	bar.SetTotal(-1, true)

	// Only legacy-API records carry the integrity pair; verify both when
	// present, skip verification otherwise.
	if record.HasIntegrity() {
		if size != record.SizeBytes {
			return "", fmt.Errorf("size mismatch for %s: got %d bytes, expected %d", name, size, record.SizeBytes)
		}
		sum := base64.StdEncoding.EncodeToString(hash.Sum(nil))
		if sum != record.Checksum {
			return "", fmt.Errorf("checksum mismatch for %s", name)
		}
	}

	if err := os.WriteFile(dest, buff.Bytes(), 0o644); err != nil {
		return "", util.WrapError(err, "failed to write "+dest)
	}
	return dest, nil
}

func barName(name string) string {
	if len(name) > barNameWidth {
		return name[:barNameWidth]
	}
	return name + strings.Repeat(" ", barNameWidth-len(name))
}
