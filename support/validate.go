package support

// Validatable is implemented by types that can walk their own internal
// structure and report the first invariant violation they find.
type Validatable interface {
	Validate() error
}
