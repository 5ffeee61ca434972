package catalog

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe slug from a product name: lowercase, diacritics
// stripped, non-alphanumeric runs collapsed to single hyphens, edges trimmed.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	// Decompose and drop combining marks, so "ñ" -> "n", "é" -> "e".
	var b strings.Builder
	for _, r := range norm.NFD.String(lower) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	var out strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range b.String() {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			out.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(out.String(), "-")
}

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug returns the first non-colliding slug for name, appending -1,
// -2, ... until exists reports it free.
func UniqueSlug(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Slugify(name)
	slug := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(counter)
	}
}
