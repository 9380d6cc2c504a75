// Package i18n provides the bilingual (English/Malayalam) message catalog.
//
// Messages live in embedded YAML files under locales/. Every user-facing
// string in the system is addressed by a dotted key; the documented key set
// is the union of keys in locales/en.yaml. Lookups are total: a missing key
// falls back to the key itself so a translation gap never breaks a response.
package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed locales/en.yaml
var englishYAML []byte

//go:embed locales/ml.yaml
var malayalamYAML []byte

// Text is a bilingual string pair as serialized in API responses.
type Text struct {
	EN string `json:"en"`
	ML string `json:"ml"`
}

// Catalog holds the immutable message tables for both locales.
type Catalog struct {
	en map[string]string
	ml map[string]string
}

// Load parses the embedded locale files. It fails only when the embedded
// YAML is malformed, which is a build defect rather than a runtime condition.
func Load() (*Catalog, error) {
	en := map[string]string{}
	if err := yaml.Unmarshal(englishYAML, &en); err != nil {
		return nil, fmt.Errorf("i18n: parse en catalog: %w", err)
	}
	ml := map[string]string{}
	if err := yaml.Unmarshal(malayalamYAML, &ml); err != nil {
		return nil, fmt.Errorf("i18n: parse ml catalog: %w", err)
	}
	return &Catalog{en: en, ml: ml}, nil
}

// MustLoad is Load for process startup paths where a malformed catalog
// should abort immediately.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Pair returns the bilingual text for a key. When the Malayalam entry is
// missing the English text is used for both; when the key is unknown the
// key itself is returned.
func (c *Catalog) Pair(key string) Text {
	en, ok := c.en[key]
	if !ok {
		return Text{EN: key, ML: key}
	}
	ml, ok := c.ml[key]
	if !ok {
		ml = en
	}
	return Text{EN: en, ML: ml}
}

// Pairf returns the bilingual text for a key with fmt-style arguments
// applied to both variants.
func (c *Catalog) Pairf(key string, args ...any) Text {
	p := c.Pair(key)
	if len(args) == 0 {
		return p
	}
	return Text{
		EN: fmt.Sprintf(p.EN, args...),
		ML: fmt.Sprintf(p.ML, args...),
	}
}

// Keys returns the number of English catalog entries. Used by tests to guard
// against an accidentally empty embed.
func (c *Catalog) Keys() int { return len(c.en) }
