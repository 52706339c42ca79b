package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is the original language of a catalog item.
// The zero value is not a valid language.
type Language int

const (
	English Language = iota + 1
	French
	Chinese
	AncientGreek
	Spanish
	German
	Italian
	Japanese
	Korean
)

type languageEntry struct {
	display string
	tag     language.Tag
}

var languages = map[Language]languageEntry{
	English:      {"English", language.English},
	French:       {"French", language.French},
	Chinese:      {"Chinese", language.Chinese},
	AncientGreek: {"Ancient Greek", language.MustParse("grc")},
	Spanish:      {"Spanish", language.Spanish},
	German:       {"German", language.German},
	Italian:      {"Italian", language.Italian},
	Japanese:     {"Japanese", language.Japanese},
	Korean:       {"Korean", language.Korean},
}

// Languages returns every supported language in declaration order.
func Languages() []Language {
	return []Language{English, French, Chinese, AncientGreek, Spanish, German, Italian, Japanese, Korean}
}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	_, ok := languages[l]
	return ok
}

func (l Language) String() string {
	if e, ok := languages[l]; ok {
		return e.display
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Tag returns the BCP 47 tag for l, or language.Und if l is not valid.
func (l Language) Tag() language.Tag {
	if e, ok := languages[l]; ok {
		return e.tag
	}
	return language.Und
}

// ParseLanguage accepts a display name ("Ancient Greek", "ancient_greek") or a
// BCP 47 tag ("fr", "zh-Hant", "grc").
func ParseLanguage(s string) (Language, error) {
	key := strings.Join(strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(s))), " ")
	for _, l := range Languages() {
		if strings.ToLower(languages[l].display) == key {
			return l, nil
		}
	}

	if tag, err := language.Parse(strings.TrimSpace(s)); err == nil {
		base, _ := tag.Base()
		for _, l := range Languages() {
			if b, _ := l.Tag().Base(); b == base {
				return l, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
