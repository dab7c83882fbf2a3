package types

// EntryKind distinguishes files from directories when matching and
// reporting. Symlinks are classified by their target.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

// String returns a human-readable kind name for reports and logs.
func (k EntryKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	default:
		return "file"
	}
}
