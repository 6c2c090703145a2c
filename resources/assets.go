package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const iconFile = "icon.svg"

//go:embed icon.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns the application icon.
func Icon() (fyne.Resource, error) {
	return loadResource(iconFS, iconFile, &iconCache)
}

// MustIcon returns the application icon or panics on error.
func MustIcon() fyne.Resource {
	resource, err := Icon()
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
