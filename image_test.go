package backoffice

import (
	"bytes"
	"strings"
	"testing"
)

func TestImageDataURL(t *testing.T) {
	testCases := []struct {
		name       string
		payload    []byte
		wantPrefix string
		wantErr    string
	}{
		{
			name:       "png",
			payload:    []byte("\x89PNG\r\n\x1a\nrest-of-the-file"),
			wantPrefix: "data:image/png;base64,",
		},
		{
			name:       "jpeg",
			payload:    []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'},
			wantPrefix: "data:image/jpeg;base64,",
		},
		{
			name:    "gif is not allowed",
			payload: []byte("GIF89a-and-some-bytes"),
			wantErr: "unsupported image type",
		},
		{
			name:    "plain text is not an image",
			payload: []byte("hello world"),
			wantErr: "unsupported image type",
		},
		{
			name:    "empty upload",
			payload: nil,
			wantErr: "empty file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ImageDataURL(bytes.NewReader(tc.payload))
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("ImageDataURL() = %q, want error", got)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error = %v, want it to mention %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImageDataURL() failed: %v", err)
			}
			if !strings.HasPrefix(got, tc.wantPrefix) {
				t.Errorf("ImageDataURL() = %.40q, want prefix %q", got, tc.wantPrefix)
			}
		})
	}
}
