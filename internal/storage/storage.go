package storage

import "mime/multipart"

// Folder namespaces of the public blob store. Stored paths are relative and
// always begin with one of these.
const (
	FolderAnimes   = "animes"
	FolderEpisodes = "episodes"
	FolderAvatars  = "avatars"
	FolderPosts    = "posts"
)

// BlobStore persists uploaded files under a folder namespace and returns a
// stable relative path. Delete has delete-if-exists semantics: removing a
// path that is already gone is not an error.
type BlobStore interface {
	SaveUpload(folder string, file *multipart.FileHeader) (string, error)
	Delete(path string) error
}
