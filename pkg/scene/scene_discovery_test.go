package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"reflect-refract", "Reflect Refract"},
		{"glass_table", "Glass Table"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestParseYAMLMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "full_metadata.yml",
			content: `# Scene: Glass Table
# Description: A table with a glass top
# Group: Furniture

- add: light
  at: [-10, 10, -10]
  intensity: [1, 1, 1]`,
			expected: SceneInfo{
				ID:          "yaml:full_metadata",
				Name:        "Glass Table",
				DisplayName: "Glass Table",
				Description: "A table with a glass top",
				Group:       "Furniture",
				Type:        "yaml",
			},
		},
		{
			name: "partial_metadata.yml",
			content: `# Scene: Mirrors
# Description: Two facing mirrors

- add: sphere`,
			expected: SceneInfo{
				ID:          "yaml:partial_metadata",
				Name:        "Mirrors",
				DisplayName: "Mirrors",
				Description: "Two facing mirrors",
				Group:       "Scene Files", // Default group
				Type:        "yaml",
			},
		},
		{
			name:    "no_metadata.yml",
			content: `- add: sphere`,
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata", // From filename
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
		{
			name: "late_comment.yml",
			content: `- add: sphere
# Scene: Ignored`,
			expected: SceneInfo{
				ID:          "yaml:late_comment",
				Name:        "Late Comment",
				DisplayName: "Late Comment",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseYAMLMetadata(path)
			if err != nil {
				t.Fatalf("ParseYAMLMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseYAMLMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestListYAMLScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListYAMLScenes(filepath.Join(t.TempDir(), "missing"), nil)
	if err != nil {
		t.Errorf("ListYAMLScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("ListYAMLScenes() = %v, want empty slice", scenes)
	}
}

func TestListYAMLScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b.yml", "# Scene: Bravo\n- add: sphere\n")
	writeSceneFile(t, dir, "a.yaml", "# Scene: Alpha\n- add: cube\n")
	writeSceneFile(t, dir, "notes.txt", "# Scene: Not A Scene\n")

	scenes, err := ListYAMLScenes(dir, nil)
	if err != nil {
		t.Fatalf("ListYAMLScenes() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Bravo" {
		t.Errorf("Scenes not sorted by display name: %q, %q", scenes[0].Name, scenes[1].Name)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "mirrors.yml", "# Scene: Mirrors\n# Group: Examples\n- add: plane\n")

	response, err := ListAllScenes(dir, nil)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(response.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(response.Groups))
	}

	builtInGroup := response.Groups[0]
	if builtInGroup.Name != "Built-in Scenes" {
		t.Errorf("First group = %q, want Built-in Scenes", builtInGroup.Name)
	}

	expectedScenes := BuiltinNames()
	if len(builtInGroup.Scenes) != len(expectedScenes) {
		t.Errorf("Built-in scenes count = %d, want %d", len(builtInGroup.Scenes), len(expectedScenes))
	}
	sceneIDs := make(map[string]bool)
	for _, scene := range builtInGroup.Scenes {
		sceneIDs[scene.ID] = true
		if scene.Type != "builtin" {
			t.Errorf("Scene %s has type %q, want builtin", scene.ID, scene.Type)
		}
	}
	for _, expectedID := range expectedScenes {
		if !sceneIDs[expectedID] {
			t.Errorf("Missing expected built-in scene: %s", expectedID)
		}
	}

	examples := response.Groups[1]
	if examples.Name != "Examples" || len(examples.Scenes) != 1 {
		t.Fatalf("Unexpected second group %+v", examples)
	}
	if examples.Scenes[0].ID != "yaml:mirrors" {
		t.Errorf("Scene ID = %q, want yaml:mirrors", examples.Scenes[0].ID)
	}
}
