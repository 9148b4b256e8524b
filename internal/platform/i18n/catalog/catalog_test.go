package catalog

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("ru-RU") {
		t.Fatal("expected ru-RU locale")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/matchmaking.yaml": &fstest.MapFile{Data: []byte(`
locale: "en-US"
namespace: "matchmaking"
messages:
  "matchmaking.left_queue": "You have left the queue."
  "matchmaking.only_english": "English only."
`)},
		"locales/ru-RU/matchmaking.yaml": &fstest.MapFile{Data: []byte(`
locale: "ru-RU"
namespace: "matchmaking"
messages:
  "matchmaking.left_queue": "Вы покинули очередь."
`)},
	}

	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("load from fs: %v", err)
	}

	value, ok := bundle.Message("ru-RU", "matchmaking.left_queue")
	if !ok || value != "Вы покинули очередь." {
		t.Fatalf("expected ru-RU value, got %q (ok=%v)", value, ok)
	}

	value, ok = bundle.Message("ru-RU", "matchmaking.only_english")
	if !ok || value != "English only." {
		t.Fatalf("expected base-locale fallback, got %q (ok=%v)", value, ok)
	}

	if _, ok := bundle.Message("ru-RU", "matchmaking.missing"); ok {
		t.Fatal("expected missing key to report not found")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/matchmaking.yaml": &fstest.MapFile{Data: []byte(`
locale: "ru-RU"
namespace: "matchmaking"
messages:
  "matchmaking.left_queue": "x"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/ru-RU/matchmaking.yaml": &fstest.MapFile{Data: []byte(`
locale: "ru-RU"
namespace: "matchmaking"
messages:
  "matchmaking.left_queue": "x"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestEmbeddedLocalesShareKeySet(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d keys, base has %d", locale, len(messages), len(base))
		}
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s is missing key %s", locale, key)
			}
		}
	}
}
