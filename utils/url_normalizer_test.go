package utils

import (
	"testing"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "endpoint with UTM parameters",
			input:    "https://example.com/feed.xml?utm_source=rss&utm_medium=rss&utm_campaign=test",
			expected: "https://example.com/feed.xml",
		},
		{
			name:     "endpoint with trailing slash",
			input:    "https://example.com/feed/",
			expected: "https://example.com/feed",
		},
		{
			name:     "mixed-case host is lowered",
			input:    "https://Example.COM/feed.xml",
			expected: "https://example.com/feed.xml",
		},
		{
			name:     "fragment is stripped",
			input:    "https://example.com/feed.xml#latest",
			expected: "https://example.com/feed.xml",
		},
		{
			name:     "meaningful query parameters survive",
			input:    "https://www.youtube.com/feeds/videos.xml?channel_id=UC123&utm_source=share",
			expected: "https://www.youtube.com/feeds/videos.xml?channel_id=UC123",
		},
		{
			name:     "root path keeps its slash",
			input:    "https://example.com/",
			expected: "https://example.com/",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  https://example.com/feed.xml  ",
			expected: "https://example.com/feed.xml",
		},
		{
			name:    "unparseable URL errors",
			input:   "https://example.com/fe%zzed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEndpoint(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeEndpoint(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeEndpoint(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("NormalizeEndpoint(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
