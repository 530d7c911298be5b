package browser

import (
	"os"
	"os/exec"
	"runtime"
)

// Command returns the command that opens url. configured takes precedence
// over the SNIPPER_BROWSER and BROWSER environment variables.
func Command(configured, url string) *exec.Cmd {
	for _, browser := range []string{configured, os.Getenv("SNIPPER_BROWSER"), os.Getenv("BROWSER")} {
		if browser != "" {
			return exec.Command(browser, url)
		}
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("cmd", "/c", "start", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// Open opens url in the configured or default browser without waiting for it
func Open(configured, url string) error {
	return Command(configured, url).Start()
}
