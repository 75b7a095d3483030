package array

// Number is the constraint for the built-in arithmetic helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map returns a new owning array holding fn applied to every element of a.
func Map[T, U any, I Dim](a *Array[T, I], fn func(T) U) (*Array[U, I], error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	out, err := Allocate[U](a.shape, Packed)
	if err != nil {
		return nil, err
	}
	dst := out.h.buf.data
	for i := range dst {
		dst[i] = fn(*a.UncheckedOffset(i))
	}
	return out, nil
}

// Apply replaces every element of a with fn of itself.
func Apply[T any, I Dim](a *Array[T, I], fn func(T) T) error {
	return a.Iterate(func(_ I, v *T) error {
		*v = fn(*v)
		return nil
	})
}

// ZipWith combines two arrays of identical shape element by element.
func ZipWith[T, U, V any, I Dim](a *Array[T, I], b *Array[U, I], fn func(T, U) V) (*Array[V, I], error) {
	if a.h.released.Load() || b.h.released.Load() {
		return nil, ErrReleased
	}
	if a.shape != b.shape {
		return nil, &ShapeMismatchError{Expected: toSlice(a.shape), Found: toSlice(b.shape)}
	}
	out, err := Allocate[V](a.shape, Packed)
	if err != nil {
		return nil, err
	}
	dst := out.h.buf.data
	for i := range dst {
		dst[i] = fn(*a.UncheckedOffset(i), *b.UncheckedOffset(i))
	}
	return out, nil
}

// Fold reduces the elements of a in row-major order.
func Fold[T, A any, I Dim](a *Array[T, I], init A, fn func(acc A, v T) A) (A, error) {
	if a.h.released.Load() {
		return init, ErrReleased
	}
	acc := init
	for i := 0; i < a.Size(); i++ {
		acc = fn(acc, *a.UncheckedOffset(i))
	}
	return acc, nil
}

// Add returns the element-wise sum of a and b.
func Add[T Number, I Dim](a, b *Array[T, I]) (*Array[T, I], error) {
	return ZipWith(a, b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference of a and b.
func Sub[T Number, I Dim](a, b *Array[T, I]) (*Array[T, I], error) {
	return ZipWith(a, b, func(x, y T) T { return x - y })
}

// Mul returns the element-wise product of a and b.
func Mul[T Number, I Dim](a, b *Array[T, I]) (*Array[T, I], error) {
	return ZipWith(a, b, func(x, y T) T { return x * y })
}

// Sum returns the sum of all elements.
func Sum[T Number, I Dim](a *Array[T, I]) (T, error) {
	return Fold(a, T(0), func(acc, v T) T { return acc + v })
}
