/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MakeAccessName(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		label string
		want  string
	}{
		{"Name", "Name"},
		{"Vertex 1 X-coordinate", "Vertex_1_X_coordinate"},
		{"  Outside Layer ", "Outside_Layer"},
		{"Direction of Relative North", "Direction_of_Relative_North"},
		{"Loads Convergence Tolerance Value", "Loads_Convergence_Tolerance_Value"},
		{"Schedule Type Limits Name", "Schedule_Type_Limits_Name"},
		{"A -- B", "A_B"},
		{"", ""},
		{" -- ", ""},
	}
	for _, tt := range tests {
		require.Equal(tt.want, MakeAccessName(tt.label), tt.label)
	}
}

func Test_replicateLabel(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		label string
		group int
		want  string
	}{
		{"Field 1", 0, "Field 1"},
		{"Field 1", 3, "Field 4"},
		{"Zone 1 Name", 2, "Zone 3 Name"},
		{"Vertex 1 X-coordinate", 1, "Vertex 2 X-coordinate"},
		{"Extensible 1 Field 2", 1, "Extensible 2 Field 2"},
		{"Field 10", 1, "Field 10 2"},
		{"Name", 0, "Name"},
		{"Name", 1, "Name 2"},
	}
	for _, tt := range tests {
		require.Equal(tt.want, replicateLabel(tt.label, tt.group), tt.label)
	}

	require.True(hasGroupNumber("Field 1 Determined by the Number of Independent Variables"))
	require.False(hasGroupNumber("Field 10"))
	require.False(hasGroupNumber("Name"))
}

func Test_DataKind(t *testing.T) {
	require := require.New(t)

	k, ok := DataKindFromIDD(" Object-List ")
	require.True(ok)
	require.Equal(DataKind_objectList, k)
	require.Equal("objectList", k.TrimString())

	_, ok = DataKindFromIDD("text")
	require.False(ok)

	require.True(DataKind_real.IsNumeric())
	require.True(DataKind_integer.IsNumeric())
	require.False(DataKind_null.IsNumeric())
	require.True(DataKind_alpha.IsText())
	require.False(DataKind_choice.IsText())
	require.Equal("DataKind(100)", DataKind(100).String())
}
