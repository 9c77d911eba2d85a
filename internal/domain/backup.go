package domain

import "context"

// Database produces a plain SQL dump of one database at outputPath by
// invoking an external dump utility.
type Database interface {
	Dump(ctx context.Context, database, outputPath string) error

	// DumpCommand renders the command line that Dump would run, with the
	// password redacted. Used for command echo and simulate mode.
	DumpCommand(database, outputPath string) string
}

// Compressor replaces a file in place with its compressed form, appending a
// fixed suffix to the path.
type Compressor interface {
	Compress(ctx context.Context, path string) error
	CompressCommand(path string) string
}

// Owner assigns the configured system user and group to a path.
type Owner interface {
	Chown(ctx context.Context, path string) error
	ChownCommand(path string) string
}
