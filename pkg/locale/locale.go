// Package locale resolves the diagnostic language and carries the catalog of
// learner-facing messages.
package locale

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/language"
)

// LanguageEnv selects the diagnostic language (an IETF tag such as "fr").
// CORRECTOR_LANGUAGE takes precedence over the conventional LANGUAGE.
const (
	LanguageEnv         = "LANGUAGE"
	OverrideLanguageEnv = "CORRECTOR_LANGUAGE"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.French,
}

var matcher = language.NewMatcher(supported)

var (
	mu     sync.RWMutex
	active = language.English
	loaded bool
)

// Resolve determines the active language from the environment. It is called
// lazily on first lookup and may be called again after changing the
// environment (tests do).
func Resolve() language.Tag {
	mu.Lock()
	defer mu.Unlock()
	raw := os.Getenv(OverrideLanguageEnv)
	if raw == "" {
		raw = os.Getenv(LanguageEnv)
	}
	active = language.English
	if raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			_, idx, _ := matcher.Match(tag)
			active = supported[idx]
		}
	}
	loaded = true
	return active
}

// Override forces the active language from a raw tag, bypassing the
// environment. Unparseable tags keep the current language.
func Override(raw string) language.Tag {
	mu.Lock()
	defer mu.Unlock()
	if tag, err := language.Parse(raw); err == nil {
		_, idx, _ := matcher.Match(tag)
		active = supported[idx]
		loaded = true
	}
	return active
}

// Active returns the resolved language tag.
func Active() language.Tag {
	mu.RLock()
	ok := loaded
	tag := active
	mu.RUnlock()
	if ok {
		return tag
	}
	return Resolve()
}

// T returns the message for id in the active language, falling back to
// English when no translation exists.
func T(id MessageID) string {
	if Active() == language.French {
		if msg, ok := french[id]; ok {
			return msg
		}
	}
	return english[id]
}

// Tf returns the formatted message for id in the active language.
func Tf(id MessageID, args ...interface{}) string {
	return fmt.Sprintf(T(id), args...)
}
