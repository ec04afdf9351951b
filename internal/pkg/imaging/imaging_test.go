package imaging

import (
	"strings"
	"testing"
)

func TestValidDataURI(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"png", "data:image/png;base64,aGVsbG8=", true},
		{"jpeg", "data:image/jpeg;base64,aGVsbG8=", true},
		{"webp", "data:image/webp;base64,aGVsbG8=", true},
		{"empty", "", false},
		{"plain url", "https://example.com/pic.png", false},
		{"wrong mime", "data:text/html;base64,aGVsbG8=", false},
		{"svg rejected", "data:image/svg+xml;base64,aGVsbG8=", false},
		{"bad base64", "data:image/png;base64,!!!not-base64!!!", false},
		{"prefix only", "data:image/png;base64,", false},
	}
	for _, tc := range cases {
		if got := ValidDataURI(tc.in); got != tc.want {
			t.Fatalf("%s: ValidDataURI(%.40q) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestValidDataURI_SizeBound(t *testing.T) {
	huge := "data:image/png;base64," + strings.Repeat("A", MaxPayloadBytes)
	if ValidDataURI(huge) {
		t.Fatalf("payload above the byte bound must be rejected")
	}
}
