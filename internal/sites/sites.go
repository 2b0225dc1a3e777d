// Package sites holds per-site automation manifests: the authentication
// indicators, login entry point, and selector fallback chains a run needs.
// Manifests are YAML so new sites can be added without a rebuild; a few
// well-known sites ship built in.
package sites

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Site describes how to automate one website.
type Site struct {
	// Name is the manifest key used on the command line.
	Name string `yaml:"name"`

	// URL is the default target page.
	URL string `yaml:"url"`

	// LoginURL is where the interactive login wait navigates. Optional.
	LoginURL string `yaml:"login_url,omitempty"`

	// Indicators are selectors whose presence means "logged in", in
	// preference order.
	Indicators []string `yaml:"indicators"`

	// ComposeURL is the direct composer address used when no compose
	// trigger can be located.
	ComposeURL string `yaml:"compose_url,omitempty"`

	// Compose, Input and Submit are selector fallback chains for the
	// publishing flow's three UI targets.
	Compose []string `yaml:"compose,omitempty"`
	Input   []string `yaml:"input,omitempty"`
	Submit  []string `yaml:"submit,omitempty"`
}

// Validate checks the parts every site needs.
func (s Site) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("site name is required")
	}
	if s.URL == "" {
		return fmt.Errorf("site %q: url is required", s.Name)
	}
	if len(s.Indicators) == 0 {
		return fmt.Errorf("site %q: at least one indicator is required", s.Name)
	}
	return nil
}

// Builtin returns the bundled site manifests.
func Builtin() map[string]Site {
	x := Site{
		Name:     "x",
		URL:      "https://x.com",
		LoginURL: "https://x.com/login",
		Indicators: []string{
			`[data-testid="SideNav_NewTweet_Button"]`,
			`[data-testid="tweetButtonInline"]`,
			`[data-testid="AppTabBar_Profile_Link"]`,
			`a[href="/compose/tweet"]`,
		},
		ComposeURL: "https://x.com/compose/tweet",
		Compose: []string{
			`[data-testid="SideNav_NewTweet_Button"]`,
		},
		Input: []string{
			`[data-testid="tweetTextarea_0"]`,
			`[data-testid="tweetTextarea_0RichTextInputContainer"]`,
			`div[contenteditable="true"]`,
			`[aria-label="Tweet text"]`,
			`[aria-label="Post text"]`,
		},
		Submit: []string{
			`[data-testid="tweetButton"]`,
			`[data-testid="tweetButtonInline"]`,
			`button[data-testid="tweetButton"]`,
		},
	}

	return map[string]Site{x.Name: x}
}

// manifest is the on-disk file shape.
type manifest struct {
	Sites []Site `yaml:"sites"`
}

// Load reads site manifests from a YAML file.
func Load(path string) (map[string]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}

	sites := make(map[string]Site, len(m.Sites))
	for _, s := range m.Sites {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		sites[s.Name] = s
	}
	return sites, nil
}

// Lookup resolves a site by name, with entries from the optional file
// overriding the built-ins.
func Lookup(path, name string) (Site, error) {
	all := Builtin()

	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Site{}, err
		}
		for k, v := range loaded {
			all[k] = v
		}
	}

	site, ok := all[name]
	if !ok {
		return Site{}, fmt.Errorf("unknown site: %s", name)
	}
	return site, nil
}
