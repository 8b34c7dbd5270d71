package isokey

// D13 is the ANSI name for the key right of D12. ISO boards place the same
// key at C12, so a D13 value fills an empty C12.
const D13 = "D13"

// RowIterator walks raw iso-code keyed values in canonical order.
//
//	it := isokey.NewRowIterator(values)
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
type RowIterator struct {
	values map[string]string
	pos    int
	carry  *string

	key     Key
	value   string
	present bool
}

func NewRowIterator(values map[string]string) *RowIterator {
	return &RowIterator{values: values, pos: -1}
}

func (it *RowIterator) Next() bool {
	it.pos++
	if it.pos >= Count {
		return false
	}

	it.key = Key(it.pos)
	it.value, it.present = it.values[it.key.String()]

	if it.key == D12 {
		if v, ok := it.values[D13]; ok {
			it.carry = &v
		}
	}

	if it.key == C12 && !it.present && it.carry != nil {
		it.value, it.present = *it.carry, true
		it.carry = nil
	}

	return true
}

func (it *RowIterator) Key() Key {
	return it.key
}

func (it *RowIterator) Value() string {
	return it.value
}

// Present reports whether the current key had a value, either directly or
// carried over from D13.
func (it *RowIterator) Present() bool {
	return it.present
}
