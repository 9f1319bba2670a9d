package restval_test

import (
	"encoding/json"
	"testing"

	restval "github.com/mwestly/restval"
)

func TestClassify_JSONValueClasses(t *testing.T) {
	cases := []struct {
		in   any
		want restval.Type
	}{
		{"s", restval.TypeString},
		{true, restval.TypeBoolean},
		{float64(1.5), restval.TypeNumber},
		{int(3), restval.TypeNumber},
		{json.Number("42"), restval.TypeNumber},
		{nil, restval.TypeNull},
		{[]any{1, 2}, restval.TypeArray},
		{map[string]any{"k": 1}, restval.TypeObject},
	}
	for _, tc := range cases {
		if got := restval.Classify(tc.in); got != tc.want {
			t.Fatalf("Classify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify_PanicsOnNonJSONValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-JSON value")
		}
	}()
	restval.Classify(make(chan int))
}
