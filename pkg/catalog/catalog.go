// Package catalog provides the message catalogs that back the errstatus
// classifier. A catalog maps dotted keys (e.g. "errStatus.404") to
// localized messages, per locale, with a configurable fallback locale.
//
// The SDK ships built-in English messages for the full key surface the
// classifier consumes, so [Default] works out of the box. Additional
// locales and overrides are merged from YAML files:
//
//	en:
//	  errStatus:
//	    404: "The requested resource could not be found."
//	    defaultStatusError: "Something went wrong. Please try again."
//	de:
//	  errStatus:
//	    404: "Die angeforderte Ressource wurde nicht gefunden."
//
// Nested mappings are flattened to dotted keys; numeric keys such as 404
// need no quoting. Dotted keys may also be written directly:
//
//	en:
//	  errStatus.404: "The requested resource could not be found."
//
// # Totality
//
// [Catalog.Translator] returns a total function as required by the
// classifier contract: requested locale first, then the fallback locale,
// then the key itself. It never returns an empty string for a non-empty
// key and never fails.
package catalog

import (
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	sserr "github.com/StatusWise/statuswise-core/pkg/errors"
)

// Catalog is a set of locale-keyed message tables with a fallback locale.
// The zero value is not usable; construct with [New], [Default], or [Load].
//
// Catalog is safe for concurrent use. Lookups take a read lock; merging
// messages takes a write lock.
type Catalog struct {
	mu       sync.RWMutex
	fallback string
	locales  map[string]map[string]string
}

// DefaultLocale is the locale the built-in messages are written in, and
// the default fallback locale.
const DefaultLocale = "en"

// New creates an empty catalog with the given fallback locale. An empty
// fallback defaults to [DefaultLocale].
func New(fallback string) *Catalog {
	if fallback == "" {
		fallback = DefaultLocale
	}
	return &Catalog{
		fallback: fallback,
		locales:  make(map[string]map[string]string),
	}
}

// Default returns a catalog pre-populated with the built-in English
// messages for every key the classifier consumes.
func Default() *Catalog {
	c := New(DefaultLocale)
	c.AddMessages(DefaultLocale, builtinEnglish)
	return c
}

// Load returns [Default] merged with the messages from the given YAML
// file. Use it when a deployment ships a single catalog file on disk.
func Load(path string) (*Catalog, error) {
	c := Default()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// AddMessages merges the given messages into a locale, overriding existing
// entries key by key. Empty keys are ignored.
func (c *Catalog) AddMessages(locale string, messages map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	table := c.locales[locale]
	if table == nil {
		table = make(map[string]string, len(messages))
		c.locales[locale] = table
	}
	for k, v := range messages {
		if k == "" {
			continue
		}
		table[k] = v
	}
}

// LoadFile merges a YAML catalog file into the catalog. The file's top
// level maps locale tags to message trees; nested mappings are flattened
// to dotted keys. Returns a [sserr.CodeCatalogLoad] error if the file
// cannot be read and [sserr.CodeCatalogParse] if it cannot be parsed.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return sserr.Wrapf(err, sserr.CodeCatalogLoad,
			"catalog: failed to read %q", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return sserr.Wrapf(err, sserr.CodeCatalogParse,
			"catalog: failed to parse %q", path)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty file: nothing to merge.
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return sserr.Newf(sserr.CodeCatalogParse,
			"catalog: %q must have a locale mapping at the top level", path)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		localeNode, tree := doc.Content[i], doc.Content[i+1]
		messages := make(map[string]string)
		if err := flatten(tree, "", messages); err != nil {
			return sserr.Wrapf(err, sserr.CodeCatalogParse,
				"catalog: invalid message tree for locale %q in %q",
				localeNode.Value, path)
		}
		c.AddMessages(localeNode.Value, messages)
	}
	return nil
}

// flatten walks a YAML message tree, joining nested mapping keys with dots
// and collecting scalar leaves. Working on yaml.Node (rather than decoded
// maps) keeps unquoted numeric keys such as 404 as their literal text.
func flatten(node *yaml.Node, prefix string, out map[string]string) error {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			joined := key.Value
			if prefix != "" {
				joined = prefix + "." + key.Value
			}
			if err := flatten(value, joined, out); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return sserr.New(sserr.CodeCatalogParse,
				"message value without a key")
		}
		out[prefix] = node.Value
		return nil
	default:
		return sserr.Newf(sserr.CodeCatalogParse,
			"unsupported node kind at %q (messages must be scalars or nested mappings)",
			prefix)
	}
}

// Locales returns the sorted locale tags present in the catalog.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tags := make([]string, 0, len(c.locales))
	for tag := range c.locales {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Has reports whether the locale defines the key directly (fallback is not
// consulted).
func (c *Catalog) Has(locale, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.locales[locale][key]
	return ok
}

// Lookup resolves a key in the given locale without any fallback. It
// returns a [sserr.CodeNotFoundLocale] error for an unknown locale and
// [sserr.CodeNotFoundKey] for an unknown key.
func (c *Catalog) Lookup(locale, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	table, ok := c.locales[locale]
	if !ok {
		return "", sserr.Newf(sserr.CodeNotFoundLocale,
			"catalog: locale %q is not configured", locale)
	}
	msg, ok := table[key]
	if !ok {
		return "", sserr.Newf(sserr.CodeNotFoundKey,
			"catalog: key %q is not defined for locale %q", key, locale)
	}
	return msg, nil
}

// Translator returns a total translate function for the given locale:
// requested locale first, then the fallback locale, then the key itself.
// The returned closure observes later merges into the catalog.
func (c *Catalog) Translator(locale string) func(key string) string {
	return func(key string) string {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if msg, ok := c.locales[locale][key]; ok {
			return msg
		}
		if msg, ok := c.locales[c.fallback][key]; ok {
			return msg
		}
		return key
	}
}
