package vfile

// Entity is implemented by *File and by every type embedding *File.
type Entity interface {
	// VFile returns the underlying File.
	VFile() *File
}

// VFile returns f itself. It is the structural marker checked by IsFile.
func (f *File) VFile() *File {
	return f
}

// IsFile reports whether v is a File or embeds one, without relying on the
// exact type. It is false for nil, plain values and Entities holding a nil File.
func IsFile(v any) bool {
	e, ok := v.(Entity)
	return ok && e.VFile() != nil
}
