package deliver

import "regexp"

var mobileUA = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// DetectUserAgent treats mobile browsers as share capable.
func DetectUserAgent(ua string) Capability {
	if mobileUA.MatchString(ua) {
		return ShareCapable
	}
	return DownloadOnly
}

// DetectLocal reports ShareCapable on a mobile OS whose share command is
// installed.
func DetectLocal(goos string, lookPath func(string) (string, error), command []string) Capability {
	if goos != "android" && goos != "ios" {
		return DownloadOnly
	}
	if len(command) == 0 || lookPath == nil {
		return DownloadOnly
	}
	if _, err := lookPath(command[0]); err != nil {
		return DownloadOnly
	}
	return ShareCapable
}
