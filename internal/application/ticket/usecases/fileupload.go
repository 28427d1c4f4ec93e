package usecases

import "io"

// FileUpload is an incoming attachment before it reaches the blob store.
type FileUpload struct {
	OriginalName string
	Content      io.Reader
}
