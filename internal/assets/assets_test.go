package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func makeAssetTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, dir := range []string{"textures", "skybox"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"textures/earth.jpg", "textures/moon.png"} {
		if err := os.WriteFile(filepath.Join(root, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	for _, n := range []string{"right", "left", "top", "bottom", "front", "back"} {
		if err := os.WriteFile(filepath.Join(root, "skybox", n+".png"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestResolverAbsoluteDir(t *testing.T) {
	root := makeAssetTree(t)

	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	if r.Root() != root {
		t.Errorf("root: got %s, want %s", r.Root(), root)
	}
}

func TestResolverMissingDir(t *testing.T) {
	if _, err := NewResolver(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing asset dir")
	}
}

func TestTextureLookup(t *testing.T) {
	r, err := NewResolver(makeAssetTree(t))
	if err != nil {
		t.Fatal(err)
	}

	// Name matching is case-insensitive and extension-agnostic.
	if _, err := r.Texture("Earth"); err != nil {
		t.Errorf("Earth texture: %v", err)
	}
	if _, err := r.Texture("moon"); err != nil {
		t.Errorf("moon texture: %v", err)
	}
	if _, err := r.Texture("pluto"); err == nil {
		t.Error("expected error for missing texture")
	}
}

func TestSkyboxFaces(t *testing.T) {
	r, err := NewResolver(makeAssetTree(t))
	if err != nil {
		t.Fatal(err)
	}

	faces, err := r.SkyboxFaces()
	if err != nil {
		t.Fatalf("SkyboxFaces: %v", err)
	}
	for i, f := range faces {
		if f == "" {
			t.Errorf("face %d unresolved", i)
		}
	}
}

func TestSkyboxMissingFace(t *testing.T) {
	root := makeAssetTree(t)
	os.Remove(filepath.Join(root, "skybox", "top.png"))

	r, err := NewResolver(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.SkyboxFaces(); err == nil {
		t.Error("expected error for missing skybox face")
	}
}
