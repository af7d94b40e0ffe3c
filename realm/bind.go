package realm

// Callback is a callback with arbitrary arguments, such as an event listener
// registered with the host.
type Callback func(args ...any) (any, error)

// Bind captures the current invocation and returns a Callback that always
// runs cb under it, whatever is current when the result is called. A nil cb
// is returned unchanged. Binding requires a current invocation.
func (r *Realm) Bind(cb Callback) (Callback, error) {
	if cb == nil {
		return nil, nil
	}

	inv, err := r.Current()
	if err != nil {
		return nil, err
	}

	return func(args ...any) (any, error) {
		return RunWith(r, inv, func() (any, error) {
			return cb(args...)
		})
	}, nil
}

// BindFunc is Bind for single-argument functions.
func BindFunc[A, R any](r *Realm, fn func(A) (R, error)) (func(A) (R, error), error) {
	if fn == nil {
		return nil, nil
	}

	inv, err := r.Current()
	if err != nil {
		return nil, err
	}

	return func(a A) (R, error) {
		return RunWith(r, inv, func() (R, error) {
			return fn(a)
		})
	}, nil
}

