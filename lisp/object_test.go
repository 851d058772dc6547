package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectEncode(t *testing.T) {
	testCases := []struct {
		In  *Object
		Out string
	}{
		{In: NewIdent("asd"), Out: `asd`},
		{In: NewString("asd asd"), Out: `"asd asd"`},
		{In: NewList(), Out: `()`},
		{
			In:  NewList(NewIdent("a"), NewList(NewString("b")), NewList()),
			Out: `(a ("b") ())`,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, tc.In.Encode())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := `(asd ("asdasd" asd ("asd") asd) "asdasd" ())`

	obj, err := Parse([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, obj.Encode())

	again, err := Parse([]byte(obj.Encode()))
	require.NoError(t, err)
	assert.Equal(t, obj, again)
}

func TestObjectPush(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Push(NewIdent("a")))
	require.NoError(t, list.Push(NewString("b")))
	assert.Equal(t, `(a "b")`, list.Encode())

	assert.Error(t, NewIdent("a").Push(NewIdent("b")))
	assert.Error(t, NewString("a").Push(NewIdent("b")))
}

func TestObjectTypeString(t *testing.T) {
	assert.Equal(t, "ident", ObjectTypeIdent.String())
	assert.Equal(t, "string", ObjectTypeString.String())
	assert.Equal(t, "list", ObjectTypeList.String())
	assert.Equal(t, "invalid", ObjectType(0).String())
}
