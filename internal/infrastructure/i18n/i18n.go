// Package i18n resolves banner message keys into user-facing text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys known to the catalog.
const (
	FetchError  = "FETCH_ERR"
	UpdateError = "UPDATE_ERR"
)

// supported lists catalog languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.Russian}

var messages = map[language.Tag]map[string]string{
	language.English: {
		FetchError:  "Something went wrong during feed fetching. Please try again 😉",
		UpdateError: "Something went wrong during feeds updating. Please check your internet connection 😉",
	},
	language.Russian: {
		FetchError:  "Что-то пошло не так при загрузке фида. Попробуйте ещё раз 😉",
		UpdateError: "Что-то пошло не так при обновлении фидов. Проверьте подключение к интернету 😉",
	},
}

// Translator prints catalog messages in one language.
type Translator struct {
	printer *message.Printer
	tag     language.Tag
}

// New returns a Translator for lang, falling back to English.
func New(lang string) (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, text := range entries {
			if err := b.SetString(tag, key, text); err != nil {
				return nil, err
			}
		}
	}

	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			tag = parsed
		}
	}
	matched, _, _ := language.NewMatcher(supported).Match(tag)
	base, _ := matched.Base()
	matched = language.Make(base.String())

	return &Translator{
		printer: message.NewPrinter(matched, message.Catalog(b)),
		tag:     matched,
	}, nil
}

// Language returns the language messages are printed in.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Text returns the message for key, or an empty string for an empty key.
// Unknown keys are returned as-is.
func (t *Translator) Text(key string) string {
	if key == "" {
		return ""
	}
	if _, ok := messages[language.English][key]; !ok {
		return key
	}
	return t.printer.Sprintf(key)
}
