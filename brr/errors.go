package brr

import "fmt"

// InvalidArgumentError reports a caller mistake: an out of range filter,
// block index, length, or similar.
type InvalidArgumentError string

func (e InvalidArgumentError) Error() string {
	return string(e)
}

// BadFormatError reports a malformed byte stream.
type BadFormatError string

func (e BadFormatError) Error() string {
	return string(e)
}

// UnresolvableDataError carries the issue set of a sample that cannot be
// repaired in place.
type UnresolvableDataError struct {
	Issues DataIssue
}

func (e UnresolvableDataError) Error() string {
	return fmt.Sprintf("unresolvable sample data (issues 0x%04X)", uint32(e.Issues))
}
