// Package version holds build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"

	jsoniter "github.com/json-iterator/go"
)

// Version is set with -ldflags "-X github.com/cloudposse/detect-changes/pkg/version.Version=v1.2.3".
var Version = "0.0.0-dev"

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// Get returns the Info of the running binary.
func Get() Info {
	return Info{
		Version: Version,
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String renders the Info on one line.
func (i Info) String() string {
	return fmt.Sprintf("detect-changes %s on %s/%s", i.Version, i.OS, i.Arch)
}

// JSON renders the Info as a JSON object.
func (i Info) JSON() (string, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(i)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
