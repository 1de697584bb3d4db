package locale

import "testing"

func TestLoadBuiltin(t *testing.T) {
	store, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	for _, key := range []string{"en", "de", "ru", "it", "en_fuck"} {
		t.Run(key, func(t *testing.T) {
			loc, ok := store.Get(key)
			if !ok {
				t.Fatalf("locale %q not found", key)
			}
			if loc.BotDisclaimer == "" {
				t.Fatalf("locale %q has empty disclaimer", key)
			}
			if loc.Format.Exact == "" {
				t.Fatalf("locale %q has empty exact template", key)
			}
			for _, note := range []string{"tower", "digits", "approx", "round", "too_big", "remove", "tetration", "no_post", "mention"} {
				if loc.Notes[note] == "" {
					t.Fatalf("locale %q missing note %q", key, note)
				}
			}
		})
	}
}

func TestUnsupportedVersionRefused(t *testing.T) {
	store := NewStore()
	bad := []byte(`{"V99": {"bot_disclaimer": "x", "notes": {}, "format": {}}}`)
	err := store.LoadBytes("broken", bad)
	if err == nil {
		t.Fatal("expected an error loading an unsupported version")
	}
	if _, ok := err.(*ErrUnsupportedVersion); !ok {
		if _, ok2 := store.Get("broken"); ok2 {
			t.Fatal("broken locale should not be registered")
		}
	}
}

func TestGetUnknownKey(t *testing.T) {
	store := NewStore()
	if _, ok := store.Get("xx"); ok {
		t.Fatal("expected ok=false for an unknown locale key")
	}
}
