package importer

import (
	"strings"
	"testing"
	"time"
)

func testService(now time.Time) *Service {
	return &Service{
		maxFileSize: 5 << 20,
		now:         func() time.Time { return now },
	}
}

func TestParseDateWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	s := testService(now)

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"empty", "", false},
		{"garbage", "next friday probably", false},
		{"tomorrow", "2025-06-16 19:00", true},
		{"date only", "2025-07-01", true},
		{"rfc3339", "2025-06-20T19:00:00Z", true},
		{"two days ago", "2025-06-13 19:00", true},
		{"too old", "2025-06-10 19:00", false},
		{"too far out", "2025-08-20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.parseDate(tt.raw)
			if (got != nil) != tt.want {
				t.Errorf("parseDate(%q) = %v, want accepted=%v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateImage(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G'}, make([]byte, 16)...)
	jpeg := append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, 16)...)

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantMime string
		wantErr  string
	}{
		{"png", "flyer.png", png, "image/png", ""},
		{"jpeg", "flyer.JPG", jpeg, "image/jpeg", ""},
		{"wrong extension", "flyer.pdf", png, "", "unsupported image type"},
		{"mismatched content", "flyer.png", jpeg, "", "does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := validateImage(tt.filename, tt.data, 5<<20)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("got err %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Friday Night Jam", "friday-night-jam"},
		{"  Café & Bar!  ", "caf-bar"},
		{"already-slugged", "already-slugged"},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
