package ticket

import "testing"

// TestRenderTitle tests title format substitution
func TestRenderTitle(t *testing.T) {
	tests := []struct {
		name   string
		format string
		prefix string
		id     string
		title  string
		want   string
	}{
		{
			name:   "default format",
			format: "%prefix%%id%: %title%",
			prefix: "TEST-",
			id:     "123",
			title:  "My PR",
			want:   "TEST-123: My PR",
		},
		{
			name:   "no prefix",
			format: "%prefix%%id%: %title%",
			prefix: "",
			id:     "TEST-123",
			title:  "My PR",
			want:   "TEST-123: My PR",
		},
		{
			name:   "bracketed format",
			format: "[%prefix%%id%] %title%",
			prefix: "OSS-",
			id:     "7",
			title:  "Fix typo",
			want:   "[OSS-7] Fix typo",
		},
		{
			name:   "unknown placeholder left untouched",
			format: "%prefix%%id% %unknown% %title%",
			prefix: "T-",
			id:     "1",
			title:  "x",
			want:   "T-1 %unknown% x",
		},
		{
			name:   "title preserved verbatim",
			format: "%id%: %title%",
			prefix: "",
			id:     "9",
			title:  "keep %weird% [chars] intact",
			want:   "9: keep %weird% [chars] intact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTitle(tt.format, tt.prefix, tt.id, tt.title)
			if got != tt.want {
				t.Errorf("RenderTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRenderLink tests link template substitution and placeholder requirement
func TestRenderLink(t *testing.T) {
	tests := []struct {
		name     string
		template string
		number   string
		want     string
		wantOK   bool
	}{
		{
			name:     "valid template",
			template: "https://example.atlassian.net/browse/%ticketNumber%",
			number:   "TEST-789",
			want:     "https://example.atlassian.net/browse/TEST-789",
			wantOK:   true,
		},
		{
			name:     "missing placeholder yields no message",
			template: "https://example.atlassian.net/browse/",
			number:   "TEST-789",
			wantOK:   false,
		},
		{
			name:     "empty template yields no message",
			template: "",
			number:   "TEST-789",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RenderLink(tt.template, tt.number)
			if ok != tt.wantOK {
				t.Fatalf("RenderLink() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("RenderLink() = %q, want %q", got, tt.want)
			}
		})
	}
}
