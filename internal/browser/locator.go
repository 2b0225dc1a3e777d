package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/neboloop/webskills/internal/logging"
)

// Locate tries candidate selectors for one logical UI element in order,
// each with an independent timeout. The first candidate that resolves is
// bound and returned along with the selector that matched; candidates
// after it are never queried. All candidates missing is ErrElementNotFound.
func Locate(page Page, candidates []string, perCandidate time.Duration) (Element, string, error) {
	if perCandidate == 0 {
		perCandidate = DefaultLocateTimeout
	}

	for _, selector := range candidates {
		element, err := page.WaitForSelector(selector, perCandidate)
		if err != nil || element == nil {
			continue
		}
		logging.Infof("bound %s", selector)
		return element, selector, nil
	}

	return nil, "", fmt.Errorf("%w: tried %s", ErrElementNotFound, strings.Join(candidates, ", "))
}

// Invoke activates a located interactive control. A disabled control gets
// one grace-period recheck before invocation; the DOM-level synthetic
// click bypasses overlay and occlusion issues, with a forced low-level
// click as the fallback when it throws.
func Invoke(element Element, grace time.Duration) error {
	if grace == 0 {
		grace = DefaultDisabledGrace
	}

	if isDisabled(element) {
		logging.Infof("control disabled, rechecking in %s", grace)
		time.Sleep(grace)
		if isDisabled(element) {
			logging.Warn("control still disabled, attempting invocation anyway")
		}
	}

	if _, err := element.Evaluate("el => el.click()"); err != nil {
		if clickErr := element.Click(true); clickErr != nil {
			return fmt.Errorf("invocation failed: %w", clickErr)
		}
	}
	return nil
}

func isDisabled(element Element) bool {
	v, err := element.Evaluate("el => el.disabled === true")
	if err != nil {
		return false
	}
	disabled, _ := v.(bool)
	return disabled
}
