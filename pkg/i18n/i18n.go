// Package i18n translates API error codes into localized messages.
//
// The translation tables are embedded into the binary and loaded once.
// Templates contain placeholders in the form {ParamName} that are replaced
// with the structured parameters of the error.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is used when no supported language matches.
const DefaultLocale = "en"

// Translator resolves error codes to localized messages.
type Translator struct {
	locales map[string]map[string]string
	matcher language.Matcher
	tags    []language.Tag
}

// New loads all embedded translation tables. The result is read-only and
// safe for concurrent use.
func New() (*Translator, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}

	locales := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")

		raw, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, err
		}

		var table map[string]string
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("locale %s is not valid JSON: %w", name, err)
		}

		locales[name] = table
	}

	if _, ok := locales[DefaultLocale]; !ok {
		return nil, fmt.Errorf("the default locale %q is missing", DefaultLocale)
	}

	// The default locale has to come first, the matcher falls back to
	// the first tag
	names := maps.Keys(locales)
	tags := make([]language.Tag, 0, len(names))
	tags = append(tags, language.MustParse(DefaultLocale))
	for _, name := range names {
		if name == DefaultLocale {
			continue
		}
		tags = append(tags, language.MustParse(name))
	}

	return &Translator{
		locales: locales,
		matcher: language.NewMatcher(tags),
		tags:    tags,
	}, nil
}

// Locale returns the best supported locale for an Accept-Language header.
func (tr *Translator) Locale(acceptLanguage string) string {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return DefaultLocale
	}

	_, index, _ := tr.matcher.Match(desired...)
	base, _ := tr.tags[index].Base()
	return base.String()
}

// Translate resolves the code in the given locale and substitutes the
// parameters into the template. Unknown codes fall back to the generic
// error message, unknown locales to the default locale.
func (tr *Translator) Translate(locale, code string, parameters map[string]any) string {
	table, ok := tr.locales[locale]
	if !ok {
		table = tr.locales[DefaultLocale]
	}

	template, ok := table[code]
	if !ok {
		return table["GENERAL_ERROR"]
	}

	return replaceParameters(template, parameters)
}

func replaceParameters(template string, parameters map[string]any) string {
	if len(parameters) == 0 {
		return template
	}

	for name, value := range parameters {
		template = strings.ReplaceAll(template, "{"+name+"}", fmt.Sprintf("%v", value))
	}

	return template
}
