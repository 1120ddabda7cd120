// Package i18n loads the per-language translation dictionaries and
// resolves dot-separated keys against them.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Bundle holds the dictionaries for every supported language.
type Bundle struct {
	dict      map[string]map[string]any
	fallback  string
	supported []string
	members   map[string]struct{}
}

// Load reads <lang>.json for every supported language from dir. A missing
// file is tolerated for non-fallback languages; the fallback dictionary
// must load.
func Load(dir, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"en"}
	}
	b := &Bundle{
		dict:      map[string]map[string]any{},
		fallback:  fallback,
		supported: append([]string(nil), supported...),
		members:   map[string]struct{}{},
	}
	for _, l := range supported {
		b.members[l] = struct{}{}
		raw, err := os.ReadFile(filepath.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Supported returns the supported languages in configured order.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang is a member of the supported set.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.members[lang]
	return ok
}

// Lookup walks the dot-separated key path through the language's nested
// dictionary. A missing language, path or non-string leaf yields "".
func (b *Bundle) Lookup(lang, key string) string {
	m, ok := b.dict[lang]
	if !ok {
		return ""
	}
	var cur any = m
	for _, part := range strings.Split(key, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur, ok = node[part]
		if !ok {
			return ""
		}
	}
	s, _ := cur.(string)
	return s
}

// T resolves key in lang, falling back to the default language and finally
// to the key itself.
func (b *Bundle) T(lang, key string) string {
	if v := b.Lookup(lang, key); v != "" {
		return v
	}
	if lang != b.fallback {
		if v := b.Lookup(b.fallback, key); v != "" {
			return v
		}
	}
	return key
}
