// Package language checks subtitle language tags before they are written into
// ffmpeg stream metadata. Tags are never rewritten; the checks only feed
// warnings and hints, since ffmpeg stores whatever text it is given.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Info describes a parsed language tag.
type Info struct {
	Tag   string // Trimmed input, exactly as it will be emitted.
	ISO3  string // ISO 639-2 three-letter form, e.g. "eng".
	Name  string // English display name, e.g. "English".
	Exact bool   // Tag already is its own ISO 639-2 form.
}

// Describe parses tag as an ISO 639 base language. Matroska and MP4 expect
// three-letter ISO 639-2 codes; two-letter codes parse but are not Exact.
func Describe(tag string) (Info, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return Info{}, fmt.Errorf("empty language tag")
	}
	base, err := language.ParseBase(trimmed)
	if err != nil {
		return Info{Tag: trimmed}, fmt.Errorf("language %q is not an ISO 639 code: %w", trimmed, err)
	}
	info := Info{
		Tag:  trimmed,
		ISO3: base.ISO3(),
	}
	if t, err := language.Compose(base); err == nil {
		info.Name = display.English.Languages().Name(t)
	}
	info.Exact = strings.EqualFold(info.ISO3, trimmed)
	return info, nil
}
