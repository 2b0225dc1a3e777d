package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/browser"
	"github.com/neboloop/webskills/internal/crawl"
	"github.com/neboloop/webskills/internal/sites"
)

// CrawlCmd creates the authenticated-crawl command.
func CrawlCmd() *cobra.Command {
	var (
		indicators   []string
		siteName     string
		sitesFile    string
		loginURL     string
		selector     string
		savePath     string
		waitSecs     int
		maxLength    int
		loginTimeout time.Duration
		scroll       bool
		headless     bool
		noProfile    bool
	)

	cmd := &cobra.Command{
		Use:   "crawl [url]",
		Short: "Extract page content using your logged-in browser profile",
		Long: `Crawl opens the target page in a browser bound to your existing browser
profile. If the page is not authenticated it notifies you and waits for an
interactive login, then extracts content with the given selector (or the
whole body text).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := browser.RunOptions{
				Indicators:   indicators,
				LoginURL:     loginURL,
				Headless:     headless,
				NoProfile:    noProfile,
				LoginTimeout: loginTimeout,
			}

			if siteName != "" {
				site, err := sites.Lookup(sitesFile, siteName)
				if err != nil {
					return err
				}
				opts.TargetURL = site.URL
				if len(opts.Indicators) == 0 {
					opts.Indicators = site.Indicators
				}
				if opts.LoginURL == "" {
					opts.LoginURL = site.LoginURL
				}
			}
			if len(args) > 0 {
				opts.TargetURL = args[0]
			}
			if opts.TargetURL == "" {
				return fmt.Errorf("target url required (argument or --site)")
			}
			if len(opts.Indicators) == 0 {
				return fmt.Errorf("at least one --indicator (or --site) is required")
			}

			action := crawl.Action(crawl.Options{
				Selector:  selector,
				Wait:      time.Duration(waitSecs) * time.Second,
				Scroll:    scroll,
				MaxLength: maxLength,
				SavePath:  savePath,
			})

			result := browser.NewRunner().Run(cmd.Context(), opts, action)
			if err := emitJSON(result); err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&indicators, "indicator", "i", nil, "selector that appears once logged in (repeatable)")
	cmd.Flags().StringVar(&siteName, "site", "", "use a site manifest for url, indicators and login url")
	cmd.Flags().StringVar(&sitesFile, "sites-file", "", "YAML file with additional site manifests")
	cmd.Flags().StringVar(&loginURL, "login-url", "", "login page to open when not authenticated")
	cmd.Flags().StringVarP(&selector, "selector", "s", "", "extract only elements matching this selector")
	cmd.Flags().StringVar(&savePath, "save", "", "also write the content to this file")
	cmd.Flags().IntVar(&waitSecs, "wait", 0, "extra settle seconds after load")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "truncate content to this many characters")
	cmd.Flags().DurationVar(&loginTimeout, "login-timeout", 0, "bound for the interactive login wait (default 5m)")
	cmd.Flags().BoolVar(&scroll, "scroll", false, "scroll to the bottom first to trigger lazy loading")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without a browser window (interactive login will not work)")
	cmd.Flags().BoolVar(&noProfile, "no-profile", false, "skip the persistent profile and use an ephemeral session")

	return cmd
}
