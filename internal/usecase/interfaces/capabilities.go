package interfaces

import "time"

// Clock supplies the current time to use cases so entity creation dates are
// deterministic under test.

type Clock interface {
	Now() time.Time
}

// IDGenerator supplies opaque artifact identifiers. Production ids are
// derived from high-resolution creation timestamps; tests inject fixed ones.

type IDGenerator interface {
	Next() string
}

// IFileExporter materializes an artifact's content as a file in the user's
// environment. Export returns the absolute path written.

type IFileExporter interface {
	Export(filename, content string) (string, error)
}
