package printer

import (
	"fmt"
	"strings"
)

// FormatBytes returns a human-readable byte size string.
// Examples: "512 B", "1.5 KB", "700.0 MB".
func FormatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)

	switch {
	case bytes < 0:
		return "0 B"
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// describeImage returns a short text for an image reference. Embedded
// `data:` images are described by media type and decoded size, anything
// else is returned as is.
func describeImage(img string) string {
	rest, ok := strings.CutPrefix(img, "data:")
	if !ok {
		return img
	}

	mediaType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "embedded image"
	}

	// Decoded base64 size without decoding it.
	size := int64(len(payload)) * 3 / 4
	size -= int64(len(payload) - len(strings.TrimRight(payload, "=")))

	return fmt.Sprintf("%s, %s", mediaType, FormatBytes(size))
}
