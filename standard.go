package goval

// Standard-Schema V1 interop: a vendor-neutral shape other libraries can
// consume without importing this one's types.

const (
	// StandardVersion is the Standard-Schema protocol version implemented.
	StandardVersion = 1
	// StandardVendor identifies this library in the interop shape.
	StandardVendor = "goval"
)

// StandardIssue is one failure in the interop shape. Path, when present, is
// root-to-leaf with string segments for object/record keys and int segments
// for array/tuple indices.
type StandardIssue struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// StandardResult is the interop outcome: Issues nil means success with Value.
type StandardResult struct {
	Value  any             `json:"value,omitempty"`
	Issues []StandardIssue `json:"issues,omitempty"`
}

// StandardSchema is the capability object exposed for interop.
type StandardSchema struct {
	Version  int
	Vendor   string
	Validate func(input any) StandardResult
}

// Standard wraps the schema in the Standard-Schema V1 shape. The adapter is
// mechanical: it runs the primary form (which carries structured paths),
// recovers panics, and reshapes Issues. Its acceptance set is identical to
// Parse and Safe by construction.
func (s Schema[T]) Standard() StandardSchema {
	check := s.check
	return StandardSchema{
		Version: StandardVersion,
		Vendor:  StandardVendor,
		Validate: func(input any) (res StandardResult) {
			defer func() {
				if r := recover(); r != nil {
					res = StandardResult{Issues: []StandardIssue{{Message: panicMessage(r)}}}
				}
			}()
			out, err := check(input)
			if err != nil {
				return StandardResult{Issues: standardIssues(err)}
			}
			return StandardResult{Value: out}
		},
	}
}

func standardIssues(err error) []StandardIssue {
	iss, ok := AsIssues(err)
	if !ok {
		return []StandardIssue{{Message: err.Error()}}
	}
	out := make([]StandardIssue, len(iss))
	for i, it := range iss {
		si := StandardIssue{Message: it.Message}
		if len(it.Path) > 0 {
			si.Path = make([]any, len(it.Path))
			for j, seg := range it.Path {
				si.Path[j] = seg.Value()
			}
		}
		out[i] = si
	}
	return out
}
