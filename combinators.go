package combine

// Then sequences two parsers and keeps the second value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] {
		return q
	})
}

// ThenSkip sequences two parsers and keeps the first value.
func ThenSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(v A) Parser[A] {
		return Then(q, Return(v))
	})
}

// And runs the parsers in sequence, keeping the last value. It fails as
// soon as any of them fails. And of nothing succeeds with nil.
func And(parsers ...Parser[any]) Parser[any] {
	out := Return[any](nil)
	for _, p := range parsers {
		out = Then(out, p)
	}
	return out
}

// Maybe makes p optional: if p fails, Maybe succeeds with the zero value
// and consumes nothing. Equivalent to Alt(p, Return(zero)).
func Maybe[T any](p Parser[T]) Parser[T] {
	var zero T
	return Alt(p, Return(zero))
}

// Where keeps only the Results of p whose value satisfies pred.
func Where[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return Bind(p, func(v T) Parser[T] {
		if !pred(v) {
			return Fail[T]()
		}
		return Return(v)
	})
}

// When gates p on a condition fixed at construction time: the parser is p
// if cond holds, and Fail otherwise.
func When[T any](cond bool, p Parser[T]) Parser[T] {
	if !cond {
		return Fail[T]()
	}
	return p
}

// Unless is the complement of When.
func Unless[T any](cond bool, p Parser[T]) Parser[T] {
	return When(!cond, p)
}
