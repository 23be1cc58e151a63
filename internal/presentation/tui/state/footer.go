package state

import "strings"

// FooterText returns the footer content: the notice, if any, above the help.
func FooterText(notice, helpText string) string {
	notice = strings.TrimSpace(notice)
	if notice == "" {
		return helpText
	}
	if helpText == "" {
		return notice
	}
	return notice + "\n" + helpText
}
