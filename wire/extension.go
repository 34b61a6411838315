// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sync"
)

// ExtensionKey identifies one extension schema by its XML namespace and
// local element name, e.g. {"urn:ietf:params:xml:ns:secDNS-1.1",
// "infData"}. A single namespace commonly contributes several keys (one
// per element it can appear as the top-level child of <extension>).
type ExtensionKey struct {
	Namespace string
	LocalName string
}

// extensionRegistry maps an [ExtensionKey] to a zero-value constructor for
// the Go type that marshals/unmarshals that element. This is the registry
// the router consults so that extension-aware encode/decode never needs a
// namespace-specific switch statement outside this package.
var extensionRegistry = struct {
	mu    sync.RWMutex
	types map[ExtensionKey]func() any
}{types: make(map[ExtensionKey]func() any)}

// RegisterExtension associates key with a constructor for the Go value
// representing that extension element. Called from each namespace file's
// init.
func RegisterExtension(key ExtensionKey, newValue func() any) {
	extensionRegistry.mu.Lock()
	defer extensionRegistry.mu.Unlock()
	extensionRegistry.types[key] = newValue
}

// LookupExtension returns the constructor registered for key, if any.
func LookupExtension(key ExtensionKey) (func() any, bool) {
	extensionRegistry.mu.RLock()
	defer extensionRegistry.mu.RUnlock()
	fn, ok := extensionRegistry.types[key]
	return fn, ok
}

// DecodeExtensionElements parses the raw <extension> inner XML into one
// value per recognized child element, using [ExtensionKey] lookups keyed
// by each child's namespace and local name. Unrecognized children are
// silently skipped: callers that need them should inspect Extension.Inner
// directly.
func DecodeExtensionElements(ext *Extension) ([]any, error) {
	if ext == nil || len(ext.Inner) == 0 {
		return nil, nil
	}

	decoder := xml.NewDecoder(bytes.NewReader(ext.Inner))
	var out []any
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		key := ExtensionKey{Namespace: start.Name.Space, LocalName: start.Name.Local}
		newValue, ok := LookupExtension(key)
		if !ok {
			if err := decoder.Skip(); err != nil {
				return out, fmt.Errorf("wire: skipping unrecognized extension element %+v: %w", key, err)
			}
			continue
		}
		value := newValue()
		if err := decoder.DecodeElement(value, &start); err != nil {
			return out, fmt.Errorf("wire: decoding extension element %+v: %w", key, err)
		}
		out = append(out, value)
	}
	return out, nil
}
