// Package tensor provides the dense feature-map container used by the neocognitron ops.
package tensor

// DType lists the element types a feature map may hold.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// DataType tags the element type of a RawTensor at runtime.
type DataType int

// Element types, in the order of elementTypes.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
)

// elementTypes is indexed by DataType.
var elementTypes = [...]struct {
	name  string
	bytes int
}{
	Float32: {"float32", 4},
	Float64: {"float64", 8},
	Int32:   {"int32", 4},
	Int64:   {"int64", 8},
	Uint8:   {"uint8", 1},
}

func (dt DataType) known() bool {
	return dt >= 0 && int(dt) < len(elementTypes)
}

// Size returns the width of one element in bytes. Panics on an unknown type.
func (dt DataType) Size() int {
	if !dt.known() {
		panic("unknown data type")
	}
	return elementTypes[dt].bytes
}

func (dt DataType) String() string {
	if !dt.known() {
		return "unknown"
	}
	return elementTypes[dt].name
}

// inferDataType maps the element type of a feature map to its runtime tag.
func inferDataType[T DType](zero T) DataType {
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	}
	panic("unsupported element type")
}
