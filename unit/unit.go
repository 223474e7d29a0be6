package unit

// Unit is the type with exactly one value. It carries no information and
// stands in for the absent side of a sum type encoded as a product.
type Unit struct{}

func (Unit) String() string {
	return "()"
}

// Value returns the sole inhabitant of Unit.
func Value() Unit {
	return Unit{}
}
