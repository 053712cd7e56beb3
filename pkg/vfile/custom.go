package vfile

// SetCustom attaches an arbitrary metadata value under key.
func (f *File) SetCustom(key string, v any) {
	f.custom.Set(key, v)
}

// Custom returns the metadata value stored under key.
func (f *File) Custom(key string) (any, bool) {
	return f.custom.Get(key)
}

// DeleteCustom removes key and reports whether it was present.
func (f *File) DeleteCustom(key string) bool {
	_, ok := f.custom.Delete(key)
	return ok
}

// CustomKeys returns the metadata keys in ascending order.
func (f *File) CustomKeys() []string {
	return f.custom.Keys()
}
