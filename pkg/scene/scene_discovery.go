package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SceneInfo describes a scene that can be rendered by name
type SceneInfo struct {
	ID          string `json:"id"`          // name for built-ins, "yaml:<file>" for scene files
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to the YAML file (yaml type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtinGroup = "Built-in Scenes"

// ListYAMLScenes scans dir for *.yml and *.yaml scene files. A missing
// directory yields an empty list.
func ListYAMLScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseYAMLMetadata(filePath)
		if err != nil {
			// keep going, one bad header should not hide the other scenes
			if logger != nil {
				logger.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			}
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseYAMLMetadata reads "# Scene:", "# Description:" and "# Group:" lines
// from the leading comment block of a scene file
func ParseYAMLMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          "yaml:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "yaml",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		switch {
		case strings.HasPrefix(content, "Scene:"):
			info.Name = strings.TrimSpace(strings.TrimPrefix(content, "Scene:"))
			info.DisplayName = info.Name
		case strings.HasPrefix(content, "Description:"):
			info.Description = strings.TrimSpace(strings.TrimPrefix(content, "Description:"))
		case strings.HasPrefix(content, "Group:"):
			info.Group = strings.TrimSpace(strings.TrimPrefix(content, "Group:"))
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir,
// grouped by category
func ListAllScenes(dir string, logger core.Logger) (ScenesResponse, error) {
	var response ScenesResponse

	var all []SceneInfo
	for _, name := range BuiltinNames() {
		b := builtins[name]
		all = append(all, SceneInfo{
			ID:          name,
			Name:        b.displayName,
			DisplayName: b.displayName,
			Description: b.description,
			Group:       builtinGroup,
			Type:        "builtin",
		})
	}

	files, err := ListYAMLScenes(dir, logger)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	all = append(all, files...)

	groupMap := make(map[string][]SceneInfo)
	for _, s := range all {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	// built-ins first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if group, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: group})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "reflect-refract" -> "Reflect Refract"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
