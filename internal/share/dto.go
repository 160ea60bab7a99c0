package share

import "time"

// CreateLinkInput carries everything the issuance service needs. CreatedBy
// comes from the admin guard when it is enabled, otherwise a fixed
// placeholder.
type CreateLinkInput struct {
	FolderPath    string
	Description   string
	ExpiresInDays int
	Password      string
	CreatedBy     string
}

// ShareMeta is the link metadata returned alongside a directory listing.
type ShareMeta struct {
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// FileDescriptor describes a single file to a browsing client.
type FileDescriptor struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ModifiedAt  time.Time `json:"modifiedAt"`
	DownloadURL string    `json:"downloadUrl"`
}

// Browse is the result of describing a sub-path: either a directory listing
// with share metadata, or a file descriptor.
type Browse struct {
	Type  string          `json:"type"` // "directory" | "file"
	Path  string          `json:"path"`
	Files []Entry         `json:"files,omitempty"`
	Share *ShareMeta      `json:"share,omitempty"`
	File  *FileDescriptor `json:"file,omitempty"`
}

// Download points the handler at the file to stream and the headers to set.
type Download struct {
	AbsPath  string
	Name     string
	Size     int64
	MimeType string
}
