// Package assets resolves texture and skybox files on disk.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver locates asset files relative to a root directory.
type Resolver struct {
	root string
}

// exts are tried in order when a texture name has no extension.
var exts = []string{".jpg", ".png", ".bmp"}

// NewResolver finds the asset root. A relative dir is resolved against
// the executable's directory first (packaged deployments), then the
// working directory.
func NewResolver(dir string) (*Resolver, error) {
	if filepath.IsAbs(dir) {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("asset dir: %w", err)
		}
		return &Resolver{root: dir}, nil
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), dir))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, dir))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return &Resolver{root: c}, nil
		}
	}

	return nil, fmt.Errorf("asset dir %q not found near executable or working directory", dir)
}

// Root returns the resolved asset root.
func (r *Resolver) Root() string {
	return r.root
}

// Texture resolves a body texture by name, trying known extensions.
func (r *Resolver) Texture(name string) (string, error) {
	base := strings.ToLower(name)
	for _, ext := range exts {
		path := filepath.Join(r.root, "textures", base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no texture found for %q under %s", name, filepath.Join(r.root, "textures"))
}

// SkyboxFaces resolves the six cube-map faces in GL order
// (+X, -X, +Y, -Y, +Z, -Z).
func (r *Resolver) SkyboxFaces() ([6]string, error) {
	names := [6]string{"right", "left", "top", "bottom", "front", "back"}
	var faces [6]string

	for i, n := range names {
		found := false
		for _, ext := range exts {
			path := filepath.Join(r.root, "skybox", n+ext)
			if _, err := os.Stat(path); err == nil {
				faces[i] = path
				found = true
				break
			}
		}
		if !found {
			return faces, fmt.Errorf("skybox face %q missing under %s", n, filepath.Join(r.root, "skybox"))
		}
	}

	return faces, nil
}
