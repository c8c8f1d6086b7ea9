package utils

import (
	"fmt"
	"strings"
)

// ClientInfo is a coarse description of the client behind a user agent,
// recorded with admin logins.
type ClientInfo struct {
	DeviceType string `json:"device_type"`
	Browser    string `json:"browser"`
	OS         string `json:"os"`
}

func (ci ClientInfo) String() string {
	return fmt.Sprintf("%s on %s, %s", ci.Browser, ci.OS, ci.DeviceType)
}

// DescribeClient parses the user agent into a ClientInfo.
func DescribeClient(userAgent string) ClientInfo {
	ua := strings.ToLower(userAgent)
	return ClientInfo{
		DeviceType: parseDeviceType(ua),
		Browser:    parseBrowser(ua),
		OS:         parseOS(ua),
	}
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(ua string) string {
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	return "desktop"
}

func parseBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	case strings.Contains(ua, "curl"), strings.Contains(ua, "postman"):
		return "Tool"
	}
	return "Other"
}

// parseOS checks iOS and Android before the desktop systems since their
// user agents also mention "mac os" and "linux".
func parseOS(ua string) string {
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}
