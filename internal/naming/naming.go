// Package naming resolves the file name of the produced document.
package naming

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultAppName = "PIXtoPDF"
	Extension      = ".pdf"
)

// FileName returns custom with the extension ensured, or a timestamped
// default such as "PIXtoPDF_03.05.24_2.07PM.pdf" when custom is empty.
// custom is expected to be trimmed already.
func FileName(custom, appName string, now time.Time) string {
	if custom != "" {
		return WithExtension(custom)
	}
	return DefaultName(appName, now)
}

// WithExtension appends ".pdf" unless name already ends with it in any case.
func WithExtension(name string) string {
	if strings.HasSuffix(strings.ToLower(name), Extension) {
		return name
	}
	return name + Extension
}

// DefaultName formats now as {App}_{MM.DD.YY}_{H.MM}{AM|PM}.pdf on a 12-hour
// clock.
func DefaultName(appName string, now time.Time) string {
	if appName == "" {
		appName = DefaultAppName
	}
	hour := now.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if now.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%s_%02d.%02d.%02d_%d.%02d%s%s",
		appName, int(now.Month()), now.Day(), now.Year()%100, hour, now.Minute(), suffix, Extension)
}
