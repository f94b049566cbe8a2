package grouplib

import "errors"

// ErrBadOrder indicates a library entry's declared order field could
// not be parsed as a base-10 integer.
var ErrBadOrder = errors.New("grouplib: order is not a valid integer")

// ErrNoZipEntries indicates a zip archive passed to LoadZip contained
// no JSON library files.
var ErrNoZipEntries = errors.New("grouplib: zip archive has no entries")
