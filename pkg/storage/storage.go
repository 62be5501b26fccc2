package storage

import (
	"fmt"
	"io"
	"time"
)

// ObjectStore writes a named binary object and returns a publicly
// resolvable URL for it.
type ObjectStore interface {
	Put(name string, body io.Reader) (string, error)
}

// ObjectName builds the store key for an uploaded file: the upload time
// in unix milliseconds prefixed to the original filename, under the
// videos/ prefix. Two uploads of the same filename in the same
// millisecond collide; that case is not handled.
func ObjectName(filename string, now time.Time) string {
	return fmt.Sprintf("videos/%d-%s", now.UnixMilli(), filename)
}
