package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeClient(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want ClientInfo
	}{
		{
			"chrome on mac",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36",
			ClientInfo{"desktop", "Chrome", "macOS"},
		},
		{
			"edge on windows",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36 Edg/129.0.0.0",
			ClientInfo{"desktop", "Edge", "Windows"},
		},
		{
			"safari on iphone",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Mobile/15E148 Safari/604.1",
			ClientInfo{"mobile", "Safari", "iOS"},
		},
		{
			"safari on ipad",
			"Mozilla/5.0 (iPad; CPU OS 17_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Mobile/15E148 Safari/604.1",
			ClientInfo{"tablet", "Safari", "iOS"},
		},
		{
			"firefox on android",
			"Mozilla/5.0 (Android 14; Mobile; rv:131.0) Gecko/131.0 Firefox/131.0",
			ClientInfo{"mobile", "Firefox", "Android"},
		},
		{"curl", "curl/8.7.1", ClientInfo{"desktop", "Tool", "Other"}},
		{"empty", "", ClientInfo{"desktop", "Other", "Other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeClient(tt.ua))
		})
	}
}

func TestClientInfoString(t *testing.T) {
	assert.Equal(t, "Chrome on macOS, desktop", ClientInfo{"desktop", "Chrome", "macOS"}.String())
}
