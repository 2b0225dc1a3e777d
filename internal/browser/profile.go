package browser

import (
	"os"
	"path/filepath"
	"runtime"
)

// Vendor identifies a Chromium-family browser.
type Vendor string

const (
	VendorChrome   Vendor = "chrome"
	VendorEdge     Vendor = "edge"
	VendorChromium Vendor = "chromium"
)

// Profile is a persistent browser user-data directory found on the host.
type Profile struct {
	Vendor Vendor
	Dir    string
}

// ResolveProfile finds the first existing browser user-data directory in
// vendor priority order. Returns nil when none exists; that is a normal
// degrade-to-ephemeral outcome, not an error.
func ResolveProfile() *Profile {
	for _, c := range profileCandidates() {
		if dirExists(c.Dir) {
			return &Profile{Vendor: c.Vendor, Dir: c.Dir}
		}
	}
	return nil
}

func profileCandidates() []Profile {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		support := filepath.Join(home, "Library", "Application Support")
		return []Profile{
			{VendorChrome, filepath.Join(support, "Google", "Chrome")},
			{VendorEdge, filepath.Join(support, "Microsoft Edge")},
			{VendorChromium, filepath.Join(support, "Chromium")},
		}

	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		config := filepath.Join(home, ".config")
		return []Profile{
			{VendorChrome, filepath.Join(config, "google-chrome")},
			{VendorEdge, filepath.Join(config, "microsoft-edge")},
			{VendorChromium, filepath.Join(config, "chromium")},
		}

	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return nil
		}
		return []Profile{
			{VendorChrome, filepath.Join(localAppData, "Google", "Chrome", "User Data")},
			{VendorEdge, filepath.Join(localAppData, "Microsoft", "Edge", "User Data")},
			{VendorChromium, filepath.Join(localAppData, "Chromium", "User Data")},
		}

	default:
		return nil
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
