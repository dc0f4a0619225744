package entity

// SetDefault assigns compute() to *dst only when *dst is unset. Already
// populated attributes are left alone so repeated runs are idempotent.
func SetDefault(dst **string, compute func() string) {
	if *dst != nil {
		return
	}
	v := compute()
	*dst = &v
}

// SetDefaultOptional behaves like SetDefault but lets compute report that no
// value exists, in which case *dst stays unset.
func SetDefaultOptional(dst **string, compute func() (string, bool)) {
	if *dst != nil {
		return
	}
	if v, ok := compute(); ok {
		*dst = &v
	}
}

// Value dereferences an optional attribute, returning "" when unset.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
