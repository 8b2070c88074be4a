package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// newClipID returns a random 128-bit hex identifier. Random ids replaced
// the wall-clock millisecond ids of the old admin scripts, which collided
// under rapid uploads.
func newClipID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal elsewhere too; a
		// timestamp id keeps uploads working on a broken entropy source.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename reduces a user-supplied filename to a safe display
// form. The stored file never uses this name, only the clip id.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._-")
	if name == "" {
		name = "file"
	}
	return name
}

// fileExtension returns the lowercased extension without the dot, or ""
// when the filename has none.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
