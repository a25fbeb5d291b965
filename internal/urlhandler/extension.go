package urlhandler

import (
	"net/url"
	"strings"
)

// extensionCatalog is the static set of recognized file extensions. It is
// read-only after initialization. Multi-segment suffixes (tar.gz) are listed
// without a leading dot, like everything else.
var extensionCatalog = map[string]struct{}{}

// Suffixes spanning more than one dot-delimited segment. These must be
// checked before the plain last-segment extraction or "a.tar.gz" would
// classify as "gz".
var multiSegmentSuffixes = []string{"tar.gz"}

var catalogEntries = []string{
	"xls", "xml", "xlsx", "json", "pdf", "sql", "doc", "docx", "pptx", "txt",
	"zip", "tar.gz", "tgz", "bak", "7z", "rar", "log", "cache", "secret", "db",
	"backup", "yml", "gz", "config", "csv", "yaml", "md", "md5", "exe", "dll",
	"bin", "ini", "bat", "sh", "tar", "deb", "rpm", "iso", "img", "apk", "msi",
	"dmg", "tmp", "crt", "pem", "key", "pub", "asc",
}

func init() {
	for _, ext := range catalogEntries {
		extensionCatalog[ext] = struct{}{}
	}
}

// GetExtension extracts the file extension from the URL's path component and
// returns it (without the leading dot) if it belongs to the catalog. It
// returns "" for unrecognized or missing extensions. Pure, no I/O.
func GetExtension(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	path := strings.ToLower(parsed.Path)
	lastSegment := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		lastSegment = path[idx+1:]
	}

	for _, suffix := range multiSegmentSuffixes {
		if strings.HasSuffix(lastSegment, "."+suffix) {
			return suffix
		}
	}

	idx := strings.LastIndex(lastSegment, ".")
	if idx < 0 || idx == len(lastSegment)-1 {
		return ""
	}

	ext := lastSegment[idx+1:]
	if _, ok := extensionCatalog[ext]; !ok {
		return ""
	}
	return ext
}

// NormalizeExtension strips a leading dot and lowercases, so configured
// extension lists accept both ".sql" and "sql".
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// CountExtensions builds the per-extension breakdown printed before a run.
// URLs without a recognized extension are not counted.
func CountExtensions(urls []string) map[string]int {
	counts := make(map[string]int)
	for _, u := range urls {
		if ext := GetExtension(u); ext != "" {
			counts[ext]++
		}
	}
	return counts
}
