package common

import (
	"fmt"
)

// GetUserAgent is sent with every outbound API request.
func GetUserAgent() string {
	build, ok := ReadBuildInfo()
	if !ok || len(build.Version) == 0 {
		return "stayctl/dev"
	}
	return fmt.Sprintf("stayctl/%s", build.Version)
}
