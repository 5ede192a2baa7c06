// Package browser opens URLs in the user's web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("icsterm.browser")

// Command returns the program and arguments that open url on goos. A custom
// command is split on spaces and gets url appended.
func Command(goos, custom, url string) (string, []string) {
	if fields := strings.Fields(custom); len(fields) > 0 {
		return fields[0], append(fields[1:], url)
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Open starts the browser on url without waiting for it to exit.
func Open(custom, url string) error {
	name, args := Command(runtime.GOOS, custom, url)
	log.Infof("Opening %s", url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", url, name, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warningf("%s exited: %v", name, err)
		}
	}()
	return nil
}
