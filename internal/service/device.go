package service

import (
	"strings"

	"github.com/mssola/useragent"
)

const unknownDevice = "Unknown Device"

// DescribeUserAgent renders a User-Agent header as "Browser on OS" for logs.
func DescribeUserAgent(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return unknownDevice
	}

	parsed := useragent.New(ua)
	if parsed.Bot() {
		name, _ := parsed.Browser()
		return strings.TrimSpace("Bot " + name)
	}

	browser, _ := parsed.Browser()
	platform := parsed.OS()
	if platform == "" {
		platform = parsed.Platform()
	}

	browser = strings.TrimSpace(browser)
	platform = strings.TrimSpace(platform)
	switch {
	case browser == "" && platform == "":
		return unknownDevice
	case platform == "":
		return browser + " on unknown OS"
	case browser == "":
		return "Unknown browser on " + platform
	}
	return browser + " on " + platform
}
