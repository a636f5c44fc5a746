package parsing

// Option is a possibly-absent value, used by the Optional parse operations
// to distinguish "key absent" from any present value.
type Option[A any] struct {
	value   A
	present bool
}

// Some returns an Option holding the given value.
func Some[A any](value A) Option[A] {
	return Option[A]{value: value, present: true}
}

// None returns the absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Get returns the contained value and whether it is present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.present
}

// IsPresent reports whether the Option holds a value.
func (o Option[A]) IsPresent() bool {
	return o.present
}

// OrElse returns the contained value, or def if absent.
func (o Option[A]) OrElse(def A) A {
	if o.present {
		return o.value
	}
	return def
}
