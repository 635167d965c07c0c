package http

import (
	"fmt"

	"github.com/wallfetch/wallfetch/pkg/global"
)

const UserAgentHeader = "User-Agent"

func UserAgent() string {
	return fmt.Sprintf("Wallfetch/%s", global.Version)
}
