package locale

import (
	"embed"

	gojson "github.com/goccy/go-json"
)

//go:embed assets/*.json
var assets embed.FS

func decodeFile(data []byte) (file, error) {
	var f file
	if err := gojson.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// builtin maps a locale key to its embedded asset file name.
var builtin = map[string]string{
	"en":      "assets/en.json",
	"de":      "assets/de.json",
	"ru":      "assets/ru.json",
	"it":      "assets/it.json",
	"en_fuck": "assets/en_fuck.json",
}

// LoadBuiltin registers every locale shipped with this module (English,
// German, Russian, Italian, and the informal English variant), grounded in
// the original project's get_en/get_de/get_ru/get_it/get_en_fuck loaders.
func LoadBuiltin() (*Store, error) {
	store := NewStore()
	for key, path := range builtin {
		data, err := assets.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := store.LoadBytes(key, data); err != nil {
			return nil, err
		}
	}
	return store, nil
}
