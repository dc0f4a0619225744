package naming

import (
	"path"
	"strings"
)

// EntityFolderName places fileName under rootFolder when one is configured.
func EntityFolderName(rootFolder, fileName string) string {
	if rootFolder == "" {
		return fileName
	}
	return rootFolder + "/" + fileName
}

// ParentPathAddition returns the relative climb ("..", "../..") from an
// entity nested in rootFolder back to the shared entities directory.
// Folders that would leave the entities directory produce "".
func ParentPathAddition(rootFolder string) string {
	if rootFolder == "" {
		return ""
	}
	cleaned := path.Clean(strings.ReplaceAll(rootFolder, "\\", "/"))
	if !IsNestedFolder(cleaned) {
		return ""
	}
	segments := strings.Split(cleaned, "/")
	climb := make([]string, len(segments))
	for i := range segments {
		climb[i] = ".."
	}
	return strings.Join(climb, "/")
}

// IsNestedFolder reports whether folder stays below the entities directory.
func IsNestedFolder(folder string) bool {
	cleaned := path.Clean(strings.ReplaceAll(folder, "\\", "/"))
	if cleaned == "." || cleaned == "" {
		return false
	}
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return false
	}
	return true
}
