package socialstats

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"1 234", 1234},
		{"5.6K views", 5600},
		{"100K", 100000},
		{"2.3M", 2300000},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
		{"3.14k", 3140},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseCount(tt.input)
			if result != tt.expected {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFollowersFromText(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"12.5K Followers, 300 Following, 42 Posts", 12500},
		{"1.2M subscribers", 1200000},
		{"845 followers", 845},
		{"Follow me for updates", 0},
		{"", 0},
		{"1,234 Followers", 1234},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := followersFromText(tt.input)
			if result != tt.expected {
				t.Errorf("followersFromText(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExtractFollowers(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{
			name:     "og description",
			html:     `<html><head><meta property="og:description" content="98.4K Followers, 12 Following"></head><body></body></html>`,
			expected: 98400,
		},
		{
			name:     "plain description meta",
			html:     `<html><head><meta name="description" content="Channel with 2.1M subscribers"></head><body></body></html>`,
			expected: 2100000,
		},
		{
			name:     "counter in body span",
			html:     `<html><body><span>5,421 followers</span></body></html>`,
			expected: 5421,
		},
		{
			name:     "no counter anywhere",
			html:     `<html><body><p>Welcome to my page</p></body></html>`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("failed to parse html: %v", err)
			}
			result := extractFollowers(doc)
			if result != tt.expected {
				t.Errorf("extractFollowers() = %d, want %d", result, tt.expected)
			}
		})
	}
}
