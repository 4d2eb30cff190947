// Package i18n defines the supported locale set and tag helpers shared
// across services.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// supportedTags lists the locales the platform ships translations for.
// The first entry is the default.
var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("pt-BR"),
	language.MustParse("fr"),
	language.MustParse("es"),
	language.MustParse("ar"),
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported locale tags, default first.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the platform default locale.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value into a supported tag. The bool reports whether
// value named a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported locale for the preferred tags.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// ScriptLocale returns the short locale code used in localized asset
// filenames (for example "pt-BR" -> "pt-BR", "fr" -> "fr").
func ScriptLocale(tag language.Tag) string {
	return tag.String()
}
