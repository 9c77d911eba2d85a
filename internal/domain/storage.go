package domain

import "context"

// Storage is a destination the finished artifact can be copied to after the
// local backup chain succeeds.
type Storage interface {
	Upload(ctx context.Context, localPath string, remoteName string) error
}
