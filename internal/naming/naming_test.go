package naming

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	at := func(y int, m time.Month, d, h, min int) time.Time {
		return time.Date(y, m, d, h, min, 0, 0, time.Local)
	}

	tests := []struct {
		name    string
		custom  string
		appName string
		now     time.Time
		want    string
	}{
		{"default afternoon", "", "", at(2024, 3, 5, 14, 7), "PIXtoPDF_03.05.24_2.07PM.pdf"},
		{"default midnight", "", "", at(2024, 12, 31, 0, 5), "PIXtoPDF_12.31.24_12.05AM.pdf"},
		{"default noon", "", "", at(2009, 1, 9, 12, 0), "PIXtoPDF_01.09.09_12.00PM.pdf"},
		{"default morning", "", "", at(2030, 10, 18, 9, 45), "PIXtoPDF_10.18.30_9.45AM.pdf"},
		{"custom app name", "", "Scans", at(2024, 3, 5, 23, 59), "Scans_03.05.24_11.59PM.pdf"},
		{"custom without extension", "vacation", "", at(2024, 3, 5, 14, 7), "vacation.pdf"},
		{"custom upper extension", "vacation.PDF", "", at(2024, 3, 5, 14, 7), "vacation.PDF"},
		{"custom mixed extension", "vacation.Pdf", "", at(2024, 3, 5, 14, 7), "vacation.Pdf"},
		{"custom other extension", "vacation.jpg", "", at(2024, 3, 5, 14, 7), "vacation.jpg.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.custom, tt.appName, tt.now))
		})
	}
}
