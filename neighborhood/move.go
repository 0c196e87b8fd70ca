package neighborhood

// Move is the common marker for the three move kinds this module supports.
// A typed sum-of-structs representation, rather than the source's
// heterogeneous integer payload array, eliminates an entire class of
// indexing bugs (spec §9's "move payload" design note).
type Move interface {
	isMove()
}

// IntraSwap swaps the nodes at positions I and J (I < J) within Route.
type IntraSwap struct {
	Route, I, J int
}

func (IntraSwap) isMove() {}

// Relocate moves the request Req from FromRoute entirely to the end of
// ToRoute (pickup then delivery, appended in that order).
type Relocate struct {
	FromRoute, ToRoute, Req int
}

func (Relocate) isMove() {}

// TwoOpt reverses the sub-sequence Route[I..J] (I < J, J-I >= 2).
type TwoOpt struct {
	Route, I, J int
}

func (TwoOpt) isMove() {}
