// Package handoff plans the jump from the payment popup into the messaging
// app. The page receives a Plan and executes it: navigate (or open a window)
// to the deep link, arm one fallback timer, and watch for a page-visibility
// transition that signals the app took focus.
package handoff

import (
	"net/url"
	"regexp"
	"time"
)

// FallbackAfter is how long the page waits for a visibility transition before
// opening the web fallback. The fallback fires at most once; the page must
// cancel the timer and drop the visibility listener on hand-off, on unload,
// or when the fallback itself fires, whichever happens first.
const FallbackAfter = 800 * time.Millisecond

// NavigationMode tells the page how to follow the deep link.
type NavigationMode string

const (
	// NavigateDirect replaces the current page (mobile user agents, where the
	// OS resolves the scheme).
	NavigateDirect NavigationMode = "direct"
	// NavigateNewWindow opens a new window/tab (desktop).
	NavigateNewWindow NavigationMode = "new_window"
)

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// Plan is everything the page needs to hand off to the bot.
type Plan struct {
	AppURL          string         `json:"appUrl"`
	WebURL          string         `json:"webUrl"`
	Navigate        NavigationMode `json:"navigate"`
	FallbackAfterMs int64          `json:"fallbackAfterMs"`
}

// ForUserAgent builds the hand-off plan for the fixed bot username and the
// requesting user agent.
func ForUserAgent(botUsername, userAgent string) Plan {
	esc := url.QueryEscape(botUsername)
	mode := NavigateNewWindow
	if mobileUA.MatchString(userAgent) {
		mode = NavigateDirect
	}
	return Plan{
		AppURL:          "tg://resolve?domain=" + esc,
		WebURL:          "https://t.me/" + esc + "?start",
		Navigate:        mode,
		FallbackAfterMs: FallbackAfter.Milliseconds(),
	}
}
