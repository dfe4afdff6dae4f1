/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package fieldconv

import (
	"testing"

	"github.com/stretchr/testify/require"
	testifyrequire "github.com/stretchr/testify/require"

	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/idd/iddtest"
)

func Test_TryParseNumber(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		s    string
		kind idd.DataKind
		tag  string
		want ValueKind
		str  string
	}{
		{"0.16", idd.DataKind_real, "N2", ValueKind_real, "0.16"},
		{" 30. ", idd.DataKind_real, "N1", ValueKind_real, "30."},
		{"1e3", idd.DataKind_real, "N1", ValueKind_real, "1e3"},
		{"autocalculate", idd.DataKind_real, "N7", ValueKind_text, "autocalculate"},
		{"autosize", idd.DataKind_real, "N7", ValueKind_text, "autosize"},
		{"", idd.DataKind_real, "N1", ValueKind_text, ""},
		{"Inf", idd.DataKind_real, "N1", ValueKind_text, "Inf"},
		{"NaN", idd.DataKind_real, "N1", ValueKind_text, "NaN"},
		{"25", idd.DataKind_integer, "N4", ValueKind_integer, "25"},
		{"1.0", idd.DataKind_integer, "N5", ValueKind_real, "1.0"},
		{"many", idd.DataKind_integer, "N5", ValueKind_text, "many"},
		{"5", idd.DataKind_null, "N2", ValueKind_real, "5"},
		{"5", idd.DataKind_null, "A2", ValueKind_text, "5"},
		{"5", idd.DataKind_alpha, "A1", ValueKind_text, "5"},
		{"0.5", idd.DataKind_choice, "A3", ValueKind_text, "0.5"},
	}
	for _, tt := range tests {
		v := TryParseNumber(tt.s, tt.kind, tt.tag)
		require.Equal(tt.want, v.Kind(), tt.s)
		require.Equal(tt.str, v.String(), tt.s)
	}
}

func Test_Value(t *testing.T) {
	require := require.New(t)

	t.Run("text", func(t *testing.T) {
		require := testifyrequire.New(t)

		v := Text("Main Zone")
		require.False(v.IsNumber())
		require.False(v.IsBlank())
		require.True(v.EqualFold(" MAIN ZONE"))
		_, ok := v.Float()
		require.False(ok)
		_, ok = v.Int()
		require.False(ok)

		require.True(Text("  ").IsBlank())
		require.True(Value{}.IsBlank())
		require.Equal("", Value{}.String())
	})

	t.Run("numbers", func(t *testing.T) {
		require := testifyrequire.New(t)

		f, ok := Real(0.25).Float()
		require.True(ok)
		require.Equal(0.25, f)
		require.Equal("0.25", Real(0.25).String())
		_, ok = Real(0.25).Int()
		require.False(ok)

		i, ok := Real(3).Int()
		require.True(ok)
		require.Equal(int64(3), i)

		f, ok = Integer(7).Float()
		require.True(ok)
		require.Equal(7.0, f)
		require.Equal("7", Integer(7).String())
		require.False(Integer(0).IsBlank())
	})

	t.Run("equality", func(t *testing.T) {
		require := testifyrequire.New(t)

		require.True(Real(0).Equal(TryParseNumber("0", idd.DataKind_real, "N1")))
		require.False(Real(0).Equal(TryParseNumber("0.0", idd.DataKind_real, "N1")))
		require.False(Text("1").Equal(Integer(1)))
		require.True(Integer(1).EqualFold("1"))
	})

	require.Equal("ValueKind_integer", ValueKind_integer.String())
}

func Test_Normalize(t *testing.T) {
	require := require.New(t)

	reg, err := idd.Load("Energy+.idd", iddtest.IDD)
	require.NoError(err)

	t.Run("class slot is never coerced", func(t *testing.T) {
		require := testifyrequire.New(t)

		c := reg.Class("Zone")
		raw := []string{"ZONE", "Main Zone", "0", "1.5", "", "0", "1", "2", "autocalculate"}
		vv := Normalize(c.FieldsFor(len(raw)), raw)
		require.Len(vv, len(raw))
		require.Equal(Text("ZONE"), vv[0])
		require.Equal(ValueKind_text, vv[1].Kind())
		require.Equal(ValueKind_real, vv[3].Kind())
		require.True(vv[4].IsBlank())
		require.Equal(ValueKind_integer, vv[7].Kind())
		require.Equal(Text("autocalculate"), vv[8])
	})

	t.Run("extensible positions are normalized by template", func(t *testing.T) {
		require := testifyrequire.New(t)

		c := reg.Class("BuildingSurface:Detailed")
		raw := make([]string, 27)
		raw[0] = "BUILDINGSURFACE:DETAILED"
		for i := 11; i < len(raw); i++ {
			raw[i] = "1.5"
		}
		vv := Normalize(c.FieldsFor(len(raw)), raw)
		for i := 11; i < len(raw); i++ {
			require.Equal(ValueKind_real, vv[i].Kind(), i)
		}
	})

	t.Run("positions out of class shape stay text", func(t *testing.T) {
		require := testifyrequire.New(t)

		c := reg.Class("Material:NoMass")
		raw := []string{"MATERIAL:NOMASS", "R13", "Rough", "2.3", ".9", ".7", ".7", "3"}
		vv := Normalize(c.FieldsFor(len(raw)), raw)
		require.Equal(ValueKind_real, vv[3].Kind())
		require.Equal(Text("3"), vv[7])
	})

	t.Run("default values", func(t *testing.T) {
		require := testifyrequire.New(t)

		c := reg.Class("Zone")
		require.Equal(ValueKind_real, DefaultValue(c.Field("X Origin")).Kind())
		require.Equal("0", DefaultValue(c.Field("X Origin")).String())
		require.True(Integer(1).Equal(DefaultValue(c.Field("Multiplier"))))
		require.Equal(Text("autocalculate"), DefaultValue(c.Field("Volume")))
		require.Equal(Text("Yes"), DefaultValue(c.Field("Part of Total Floor Area")))
		require.True(DefaultValue(c.Field("Zone Inside Convection Algorithm")).IsBlank())
		require.True(DefaultValue(nil).IsBlank())
	})
}
