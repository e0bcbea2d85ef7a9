package storage

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/set-night/chatbotui/internal/domain"
)

const (
	base64Marker   = ";base64,"
	emptyMediaType = "application/octet-stream"
)

// EncodeDataURL returns data as a base64 data URL with a sniffed media type,
// e.g. "data:image/png;base64,iVBORw0...".
func EncodeDataURL(data []byte) string {
	if len(data) == 0 {
		return "data:" + emptyMediaType + base64Marker
	}
	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return "data:" + mediaType + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL reverses EncodeDataURL and returns the payload and its media
// type.
func DecodeDataURL(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", domain.ErrInvalidDataURL
	}
	mediaType, payload, ok := strings.Cut(rest, base64Marker)
	if !ok {
		return nil, "", domain.ErrInvalidDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInvalidDataURL, err)
	}
	return data, mediaType, nil
}
