package tool

import "github.com/google/uuid"

// GenerateShareToken mints the unguessable token embedded in a share URL. A
// random UUID carries 122 bits of entropy; tokens stay valid until the share
// is stopped or superseded, so collision within one issuance never matters.
func GenerateShareToken() string {
	return uuid.New().String()
}
