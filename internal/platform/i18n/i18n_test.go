package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsEnglish(t *testing.T) {
	t.Parallel()

	if got := DefaultTag().String(); got != "en-US" {
		t.Fatalf("DefaultTag() = %q, want %q", got, "en-US")
	}
}

func TestParseTagSupportedLocale(t *testing.T) {
	t.Parallel()

	tag, ok := ParseTag("pt-BR")
	if !ok {
		t.Fatalf("expected pt-BR to be supported")
	}
	if tag.String() != "pt-BR" {
		t.Fatalf("ParseTag(pt-BR) = %q, want %q", tag.String(), "pt-BR")
	}
}

func TestParseTagUnknownLocaleFallsBack(t *testing.T) {
	t.Parallel()

	tag, ok := ParseTag("not a locale !!")
	if ok {
		t.Fatalf("expected unsupported locale")
	}
	if tag != DefaultTag() {
		t.Fatalf("ParseTag fallback = %q, want default", tag.String())
	}
}

func TestParseTagEmpty(t *testing.T) {
	t.Parallel()

	tag, ok := ParseTag("   ")
	if ok {
		t.Fatalf("expected empty value to be unsupported")
	}
	if tag != DefaultTag() {
		t.Fatalf("ParseTag fallback = %q, want default", tag.String())
	}
}

func TestMatchTagsPrefersClosestSupported(t *testing.T) {
	t.Parallel()

	preferred := []language.Tag{language.MustParse("fr-CA"), language.MustParse("en")}
	got := MatchTags(preferred)
	if got.String() != "fr" {
		t.Fatalf("MatchTags = %q, want %q", got.String(), "fr")
	}
}

func TestMatchTagsEmptyPreference(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %q, want default", got.String())
	}
}

func TestSupportedTagsCopyIsIsolated(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.MustParse("zh")
	if DefaultTag().String() != "en-US" {
		t.Fatalf("mutating SupportedTags copy changed the default")
	}
}
