package models

// DefaultClipCategory is assigned to every upload; categorisation happens
// later in the admin panel.
const DefaultClipCategory = "goals"

// Clip is the metadata record of one uploaded video. Filename is the
// stored object key (clip id plus extension); OriginalFilename is the
// sanitized display name of what the user picked.
// UploadDate is an RFC 3339 string and is ordered lexicographically.
type Clip struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Club             string `json:"club"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	UploadDate       string `json:"upload_date"`
	Views            int    `json:"views"`
	Likes            int    `json:"likes"`
	Category         string `json:"category"`
	Duration         string `json:"duration"`
	FileSize         int64  `json:"file_size"`
}
