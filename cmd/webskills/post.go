package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/browser"
	"github.com/neboloop/webskills/internal/post"
	"github.com/neboloop/webskills/internal/sites"
)

// PostCmd creates the social-publishing command.
func PostCmd() *cobra.Command {
	var (
		siteName     string
		sitesFile    string
		loginTimeout time.Duration
		headless     bool
	)

	cmd := &cobra.Command{
		Use:   "post <content>",
		Short: "Publish a post through your logged-in browser profile",
		Long: `Post opens the site from its manifest, verifies you are logged in (waiting
for an interactive login when you are not), then drives the site's composer:
open, fill, submit. Built-in manifests cover X; add your own with
--sites-file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.TrimSpace(args[0])
			if content == "" {
				return fmt.Errorf("content is required")
			}

			site, err := sites.Lookup(sitesFile, siteName)
			if err != nil {
				return err
			}

			opts := browser.RunOptions{
				TargetURL:    site.URL,
				Indicators:   site.Indicators,
				LoginURL:     site.LoginURL,
				Headless:     headless,
				LoginTimeout: loginTimeout,
			}

			result := browser.NewRunner().Run(cmd.Context(), opts, post.Action(post.Options{
				Site:    site,
				Content: content,
			}))
			if err := emitJSON(result); err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&siteName, "site", "x", "site manifest to publish to")
	cmd.Flags().StringVar(&sitesFile, "sites-file", "", "YAML file with additional site manifests")
	cmd.Flags().DurationVar(&loginTimeout, "login-timeout", 0, "bound for the interactive login wait (default 5m)")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without a browser window (interactive login will not work)")

	return cmd
}
