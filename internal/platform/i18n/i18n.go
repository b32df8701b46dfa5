// Package i18n loads localized UI copy and resolves the request language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every other catalog falls back to.
const BaseLocale = "en-US"

// Localizer formats a message key for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds parsed locale catalogs.
type Bundle struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	builder  *catalog.Builder
	matcher  language.Matcher
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the embedded locale bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS parses every locales/*.yaml file in catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{
		messages: map[language.Tag]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		if err := bundle.add(p, file); err != nil {
			return nil, err
		}
	}
	base := language.MustParse(BaseLocale)
	if _, ok := bundle.messages[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	// The base locale leads so the matcher falls back to it.
	sort.SliceStable(bundle.tags, func(i, j int) bool {
		return bundle.tags[i] == base && bundle.tags[j] != base
	})
	bundle.matcher = language.NewMatcher(bundle.tags)
	return bundle, nil
}

func (b *Bundle) add(filePath string, file localeFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("locale %s: locale is required", filePath)
	}
	if want := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath)); locale != want {
		return fmt.Errorf("locale %s: locale %q must match file name %q", filePath, locale, want)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("locale %s: %w", filePath, err)
	}
	if _, exists := b.messages[tag]; exists {
		return fmt.Errorf("locale %s: %q defined twice", filePath, locale)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("locale %s: messages are required", filePath)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("locale %s: message key cannot be blank", filePath)
		}
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("locale %s: register %q: %w", filePath, key, err)
		}
		messages[key] = value
	}
	b.messages[tag] = messages
	b.tags = append(b.tags, tag)
	return nil
}

// Tags returns the supported language tags, base locale first.
func (b *Bundle) Tags() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Match returns the supported tag that best fits the preferred tags.
func (b *Bundle) Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return b.tags[0]
	}
	_, idx, confidence := b.matcher.Match(preferred...)
	if confidence == language.No {
		return b.tags[0]
	}
	return b.tags[idx]
}

// Printer returns a localizer for tag backed by this bundle.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(b.Match(tag), message.Catalog(b.builder))
}

// Keys returns the sorted message keys defined for tag.
func (b *Bundle) Keys(tag language.Tag) []string {
	messages := b.messages[tag]
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadFromFS(embeddedLocales)
	if err != nil {
		panic(err)
	}
	return bundle
}
