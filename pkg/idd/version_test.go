/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Version(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		require := require.New(t)

		v, err := ParseVersion(" 8.0.0 ")
		require.NoError(err)
		require.Equal(Version{8, 0, 0}, v)
		require.Equal("8.0.0", v.String())

		v, err = ParseVersion("")
		require.NoError(err)
		require.Empty(v)
		require.Equal("0", v.String())

		_, err = ParseVersion("8.x")
		require.ErrorIs(err, ErrSchemaParseError)
	})

	t.Run("compare", func(t *testing.T) {
		require := require.New(t)

		require.Equal(0, Version{8, 0}.Compare(Version{8, 0, 0}))
		require.Equal(-1, Version{7, 2}.Compare(Version{8}))
		require.Equal(1, Version{8, 1}.Compare(Version{8, 0, 9}))
		require.True(Version{7, 2, 0}.Less(Version{8}))
		require.False(Version{8}.Less(Version{8, 0, 0}))
		require.Equal(Version{8, 0}, Version{8, 0, 0}.MajorMinor())
		require.Equal(Version{0, 0}, Version{}.MajorMinor())
	})

	t.Run("default skip list", func(t *testing.T) {
		require := require.New(t)

		require.Equal([]string{"TABLE:MULTIVARIABLELOOKUP"}, DefaultSkipList(Version{7, 2, 0}))
		require.Nil(DefaultSkipList(Version{8, 0, 0}))
		require.Nil(DefaultSkipList(Version{9}))
	})
}
