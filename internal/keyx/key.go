// Package keyx builds and validates object-storage keys for the video
// namespace. All stored keys live under the "videos/" prefix and are
// restricted to an allow-listed character set.
package keyx

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Namespace is the fixed key prefix for all video objects. Deletion and
// rename reject keys outside it.
const Namespace = "videos/"

// Sanitize replaces every character outside [A-Za-z0-9.-] with an
// underscore. It is total (any input is accepted) and idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// UploadKey derives the storage key for a freshly uploaded file: the
// sanitized original filename, prefixed with epoch milliseconds to keep
// keys collision-free, under the fixed namespace.
func UploadKey(filename string, now time.Time) string {
	return fmt.Sprintf("%s%d-%s", Namespace, now.UnixMilli(), Sanitize(filename))
}

// RenameKey derives the destination key for a rename: the sanitized
// display name under the namespace, with the old key's extension appended
// when the sanitized name does not already carry it.
func RenameKey(displayName, oldKey string) string {
	name := Sanitize(displayName)
	ext := path.Ext(oldKey)
	if ext != "" && !strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		name += ext
	}
	return Namespace + name
}

// InNamespace reports whether key names an object under the video
// namespace (strictly below the prefix, not the prefix itself).
func InNamespace(key string) bool {
	return strings.HasPrefix(key, Namespace) && len(key) > len(Namespace)
}
