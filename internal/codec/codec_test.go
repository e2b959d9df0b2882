package codec

import (
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// convOpts registers the converter set the same way the public package does.
var convOpts = jsonv2.JoinOptions(
	jsontext.AllowDuplicateNames(true),
	jsonv2.WithMarshalers(Marshalers()),
	jsonv2.WithUnmarshalers(Unmarshalers()),
)

func marshalJSON(in any) (string, error) {
	b, err := jsonv2.Marshal(in, convOpts)
	return string(b), err
}

func unmarshalJSON(data string, out any) error {
	return jsonv2.Unmarshal([]byte(data), out, convOpts)
}

// The engine hands the marshaler bridge a pointer to the value being
// encoded; the bridge must dereference it (and resolve interfaces to their
// dynamic type) before consulting the converters, or every value falls
// through to the engine's defaults.
func TestMarshalDispatchesThroughConverters(t *testing.T) {
	tt := []struct {
		name string
		in   any
		want string
	}{
		{"absent option", None[int](), `null`},
		{"present option", Some(3), `3`},
		{"tuple as array", Pair("a", 1), `["a",1]`},
		{"nil identifier", uuid.Nil, `""`},
		{"simple union variant", Green{}, `"Green"`},
		{"complex union variant", SkippedResult{}, `{"SkippedResult":{}}`},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := marshalJSON(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// A field declared with the union's interface type must encode by the
// dynamic variant held in it, not by the interface type.
func TestMarshalInterfaceTypedField(t *testing.T) {
	type palette struct {
		Primary color `json:"primary"`
	}
	got, err := marshalJSON(palette{Primary: Blue{}})
	require.NoError(t, err)
	require.Equal(t, `{"primary":"Blue"}`, got)
}
