package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/wallfetch/wallfetch/pkg/global"
	"github.com/wallfetch/wallfetch/pkg/util/console"
)

func isUpdateEnabled() bool {
	return os.Getenv("WALLFETCH_NO_UPDATE_CHECK") == ""
}

// DisplayAndCheckForRelease will display an update message if an update is available and will check for a new update in the background
// The result of that check will then be displayed the next time the user runs wallfetch
// Returns errors which the caller is assumed to ignore so as not to break the client
func DisplayAndCheckForRelease() error {
	if !isUpdateEnabled() {
		return fmt.Errorf("update check disabled")
	}

	s, err := loadState()
	if err != nil {
		return err
	}

	if s.Version != global.Version {
		console.Debugf("Resetting update message because wallfetch has been upgraded")
		return writeState(&state{Message: "", LastChecked: time.Now(), Version: global.Version})
	}

	if time.Since(s.LastChecked) > time.Hour {
		startCheckingForRelease()
	} else {
		console.Debugf("Last release check was %s", console.FormatTime(s.LastChecked))
	}
	if s.Message != "" {
		console.Info(s.Message)
		console.Info("")
	}
	return nil
}

func startCheckingForRelease() {
	go func() {
		console.Debugf("Checking for updates...")
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		switch message, err := checkForRelease(ctx); {
		case err == nil:
			if err := writeState(&state{Message: message, LastChecked: time.Now(), Version: global.Version}); err != nil {
				console.Debugf("Failed to write state: %s", err)
			}
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			break
		default:
			console.Debugf("failed querying for new release: %v", err)
		}
	}()
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// checkForRelease returns a user-facing message when a newer release exists,
// or "" when this build is current.
func checkForRelease(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, global.UpdateHost+"/releases/latest", nil)
	if err != nil {
		return "", err
	}
	req.Header.Add("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release endpoint returned status %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	return releaseMessage(global.Version, release.TagName)
}

func releaseMessage(current, latestTag string) (string, error) {
	latest, err := goversion.NewVersion(strings.TrimPrefix(latestTag, "v"))
	if err != nil {
		return "", err
	}
	installed, err := goversion.NewVersion(current)
	if err != nil {
		return "", err
	}
	if latest.GreaterThan(installed) {
		return fmt.Sprintf("A new version of wallfetch is available (%s), you are running %s", latestTag, current), nil
	}
	return "", nil
}
