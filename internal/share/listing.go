package share

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry is one immediate child of a browsed directory.
type Entry struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"` // "file" | "directory"
	Size       int64     `json:"size"` // 0 for directories
	ModifiedAt time.Time `json:"modifiedAt"`
	Extension  string    `json:"extension,omitempty"` // lower-cased, with dot; files only
}

// ListDirectory enumerates the immediate children of an already-sandboxed
// directory path. Directories sort before files; within each group names
// ascend by byte-wise (case-sensitive) compare, the same on every platform.
//
// Read failures (e.g. permissions revoked after the sandbox check) degrade
// to an empty listing so no filesystem error detail reaches an anonymous
// caller; the cause is logged here instead.
func ListDirectory(dir string) []Entry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("share_listing_failed dir=%q error=%q", dir, err)
		return []Entry{}
	}

	items := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// entry vanished between ReadDir and Stat
			continue
		}

		item := Entry{
			Name:       entry.Name(),
			Type:       "file",
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		}
		if info.IsDir() {
			item.Type = "directory"
			item.Size = 0
		} else {
			item.Extension = strings.ToLower(filepath.Ext(entry.Name()))
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Type != items[j].Type {
			return items[i].Type == "directory"
		}
		return items[i].Name < items[j].Name
	})

	return items
}
