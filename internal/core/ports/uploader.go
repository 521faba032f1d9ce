package ports

import "context"

// ImageUploader pushes raw images to the external asset host and returns
// their public URLs in the same order. Any failure aborts the whole batch;
// callers must not persist partial results.
type ImageUploader interface {
	Upload(ctx context.Context, images []ImageUpload) ([]string, error)
}
