package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuestionRoundTrip(t *testing.T) {
	tests := []Question{
		{Name: NameFromString("example.com"), Type: TypeA, Class: ClassIN},
		{Name: NameFromString("mail.example.com"), Type: TypeMX, Class: ClassCH},
		{Name: NameFromString("example.com"), Type: TypeWildcard, Class: ClassWildcard},
		{Name: NameFromString("zone.example"), Type: TypeAXFR, Class: ClassIN},
	}

	for _, q := range tests {
		t.Run(q.Name.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, q.Encode(&buf))

			decoded, err := decodeQuestion(newCursor(buf.Bytes()))
			require.NoError(t, err)
			require.True(t, q.Name.Equal(decoded.Name))
			require.Equal(t, q.Type, decoded.Type)
			require.Equal(t, q.Class, decoded.Class)
		})
	}
}

func TestQuestionInvalidType(t *testing.T) {
	for _, code := range []uint16{0, 17, 251, 256, 65535} {
		var buf bytes.Buffer
		require.NoError(t, NameFromString("example.com").Encode(&buf))
		buf.Write([]byte{byte(code >> 8), byte(code), 0, 1})

		_, err := decodeQuestion(newCursor(buf.Bytes()))
		var invalid *InvalidTypeError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, code, invalid.Code)
	}
}

func TestQuestionInvalidClass(t *testing.T) {
	for _, code := range []uint16{0, 5, 254, 65535} {
		var buf bytes.Buffer
		require.NoError(t, NameFromString("example.com").Encode(&buf))
		buf.Write([]byte{0, 1, byte(code >> 8), byte(code)})

		_, err := decodeQuestion(newCursor(buf.Bytes()))
		var invalid *InvalidClassError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, code, invalid.Code)
	}
}

func TestTypeAndClassEnumerations(t *testing.T) {
	validTypes := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 252, 253, 254, 255}
	for _, code := range validTypes {
		got, err := TypeFromCode(code)
		require.NoError(t, err)
		require.Equal(t, Type(code), got)
	}

	validClasses := []uint16{1, 2, 3, 4, 255}
	for _, code := range validClasses {
		got, err := ClassFromCode(code)
		require.NoError(t, err)
		require.Equal(t, Class(code), got)
	}
}
