package object

// ListBuilder builds lists by appending elements at the end.
//
//    lb := NewListBuilder()
//    lb.Append(a).Append(b)
//    l := lb.Build()        // => (a b)
//
// A builder must not be used after Build.
type ListBuilder struct {
	head *Object
	last *Object
	tail *Object
	n    int
}

// NewListBuilder creates an empty list builder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{}
}

// Append adds an element at the end of the list.
func (lb *ListBuilder) Append(o *Object) *ListBuilder {
	cell := &Object{typ: ConsType, car: orNil(o), cdr: nilObject}
	if lb.last == nil {
		lb.head = cell
	} else {
		lb.last.cdr = cell
	}
	lb.last = cell
	lb.n++
	return lb
}

// SetTail sets the final cdr of the list. Setting a non-list tail creates
// a dotted list. If no elements have been appended, the tail will be the
// result of Build.
func (lb *ListBuilder) SetTail(o *Object) *ListBuilder {
	lb.tail = o
	return lb
}

// Len returns the number of elements appended so far.
func (lb *ListBuilder) Len() int {
	return lb.n
}

// Build returns the list.
func (lb *ListBuilder) Build() *Object {
	if lb.head == nil {
		return orNil(lb.tail)
	}
	if lb.tail != nil {
		lb.last.cdr = lb.tail
	}
	return lb.head
}

// List creates a proper list of its arguments.
func List(elems ...*Object) *Object {
	l := nilObject
	for i := len(elems) - 1; i >= 0; i-- {
		l = Cons(elems[i], l)
	}
	return l
}
