package sparse

import "testing"

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 7, 1)
	M.Set(9, 0, 2)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("Expected M(2,3) to be 4711, is %d", v)
	}
	M.Set(2, 3, 123)
	if v := M.Value(2, 3); v != 123 {
		t.Errorf("Expected M(2,3) to be overwritten with 123, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("Expected value count to be 3, is %d", M.ValueCount())
	}
	if v := M.Value(5, 5); v != M.NullValue() {
		t.Errorf("Expected M(5,5) to be null, is %d", v)
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 0, 20)
	M.Set(0, 2, 2)
	M.Set(1, 1, 11)
	M.Set(0, 0, 0)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	expected := []int32{0, 2, 11, 20}
	if len(seen) != len(expected) {
		t.Fatalf("Expected %d values, have %d", len(expected), len(seen))
	}
	for k := range expected {
		if seen[k] != expected[k] {
			t.Errorf("Expected value #%d to be %d, is %d", k, expected[k], seen[k])
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected Set outside of dimensions to panic")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 1)
}
