// Package blobstore is the seam to the external blob storage that holds the
// raw artifact bytes. The service only deals in opaque references returned
// by Put; path construction mirrors the layout of the original store.
package blobstore

import (
	"context"
	"path"
)

type Store interface {
	// Put writes the content and returns a stable reference for it.
	Put(ctx context.Context, objectPath string, content []byte) (string, error)
	// Delete destroys the object behind a reference returned by Put.
	Delete(ctx context.Context, ref string) error
}

// ResumePath builds the object path for an applicant's resume.
func ResumePath(applicantID, fileName string) string {
	return path.Join("users", applicantID, "resume", fileName)
}

// CertificatePath builds the object path for a certificate under one skill tag.
func CertificatePath(applicantID, skillTag, fileName string) string {
	return path.Join("users", applicantID, "certifications", skillTag, fileName)
}
