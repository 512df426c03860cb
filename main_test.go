package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"single-sphere scene", "single-sphere", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, label, err := createScene(tt.sceneType, "")

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type %q, but got none", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type %q: %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for type %q, got nil", tt.sceneType)
			}
			if label != tt.sceneType {
				t.Errorf("Expected label %q, got %q", tt.sceneType, label)
			}
			if len(s.Shapes) == 0 {
				t.Error("Expected scene to contain shapes")
			}
			if len(s.Lights) == 0 {
				t.Error("Expected scene to contain lights")
			}
		})
	}
}

func TestCreateScene_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "two_spheres.yaml")
	content := `
materials:
  red: {diffuse: [1, 0, 0], albedo: [1, 0, 0, 0], specular_exponent: 10}
spheres:
  - {center: [0, 0, -3], radius: 1, material: red}
  - {center: [2, 0, -5], radius: 1, material: red}
lights:
  - {position: [0, 5, 0], intensity: 1.0}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, label, err := createScene("ignored", path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if label != "two_spheres" {
		t.Errorf("Expected label 'two_spheres', got %q", label)
	}
	if len(s.Shapes) != 2 {
		t.Errorf("Expected 2 shapes, got %d", len(s.Shapes))
	}

	if _, _, err := createScene("ignored", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing scene file")
	}
}
