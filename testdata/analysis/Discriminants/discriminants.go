package discriminants

// Valid is not annotated.
type Valid struct {
	A struct{}
}
