// Copyright 2023-2025 Plancraft, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treewalk_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plancraft/treewalk"
)

func TestTransformed(t *testing.T) {
	t.Parallel()

	changed := treewalk.Changed("x")
	assert.Equal(t, treewalk.Transformed[string]{Data: "x", Changed: true, Recursion: treewalk.Continue}, changed)

	unchanged := treewalk.Unchanged("x")
	assert.Equal(t, treewalk.Transformed[string]{Data: "x", Changed: false, Recursion: treewalk.Continue}, unchanged)

	updated := changed.Update(strings.ToUpper)
	assert.Equal(t, treewalk.Transformed[string]{Data: "X", Changed: true, Recursion: treewalk.Continue}, updated)
}

func TestMap(t *testing.T) {
	t.Parallel()

	in := treewalk.Transformed[string]{Data: "42", Changed: true, Recursion: treewalk.Jump}
	out, err := treewalk.Map(in, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, treewalk.Transformed[int]{Data: 42, Changed: true, Recursion: treewalk.Jump}, out)

	_, err = treewalk.Map(treewalk.Unchanged("nope"), strconv.Atoi)
	assert.Error(t, err)
}

func TestMapUntilStop(t *testing.T) {
	t.Parallel()

	signalAt := func(name string, r treewalk.Recursion) func(string) (treewalk.Transformed[string], error) {
		return func(s string) (treewalk.Transformed[string], error) {
			out := treewalk.Changed(s + "'")
			if s == name {
				out.Recursion = r
			}
			return out, nil
		}
	}

	t.Run("continue", func(t *testing.T) {
		t.Parallel()

		got, err := treewalk.MapUntilStop([]string{"x", "y", "z"}, signalAt("", 0))
		require.NoError(t, err)
		assert.Equal(t, []string{"x'", "y'", "z'"}, got.Data)
		assert.True(t, got.Changed)
		assert.Equal(t, treewalk.Continue, got.Recursion)
	})

	t.Run("jump erased by later sibling", func(t *testing.T) {
		t.Parallel()

		got, err := treewalk.MapUntilStop([]string{"x", "y", "z"}, signalAt("y", treewalk.Jump))
		require.NoError(t, err)
		assert.Equal(t, []string{"x'", "y'", "z'"}, got.Data)
		assert.Equal(t, treewalk.Continue, got.Recursion)
	})

	t.Run("jump from last sibling survives", func(t *testing.T) {
		t.Parallel()

		got, err := treewalk.MapUntilStop([]string{"x", "y", "z"}, signalAt("z", treewalk.Jump))
		require.NoError(t, err)
		assert.Equal(t, treewalk.Jump, got.Recursion)
	})

	t.Run("stop leaves the rest untouched", func(t *testing.T) {
		t.Parallel()

		calls := 0
		got, err := treewalk.MapUntilStop([]string{"w", "x", "y", "z"}, func(s string) (treewalk.Transformed[string], error) {
			calls++
			out := treewalk.Changed(s + "'")
			if s == "x" {
				out.Recursion = treewalk.Stop
			}
			return out, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []string{"w'", "x'", "y", "z"}, got.Data)
		assert.True(t, got.Changed)
		assert.Equal(t, treewalk.Stop, got.Recursion)
	})

	t.Run("changed accumulates across siblings", func(t *testing.T) {
		t.Parallel()

		got, err := treewalk.MapUntilStop([]string{"x", "y"}, func(s string) (treewalk.Transformed[string], error) {
			if s == "x" {
				return treewalk.Changed(s + "'"), nil
			}
			return treewalk.Unchanged(s), nil
		})
		require.NoError(t, err)
		assert.True(t, got.Changed)
	})

	t.Run("error aborts", func(t *testing.T) {
		t.Parallel()

		errOp := errors.New("op failed")
		calls := 0
		_, err := treewalk.MapUntilStop([]string{"x", "y", "z"}, func(s string) (treewalk.Transformed[string], error) {
			calls++
			if s == "y" {
				return treewalk.Transformed[string]{}, errOp
			}
			return treewalk.Unchanged(s), nil
		})
		require.ErrorIs(t, err, errOp)
		assert.Equal(t, 2, calls)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got, err := treewalk.MapUntilStop(nil, signalAt("", 0))
		require.NoError(t, err)
		assert.Empty(t, got.Data)
		assert.False(t, got.Changed)
		assert.Equal(t, treewalk.Continue, got.Recursion)
	})
}

func TestRecursionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Continue", treewalk.Continue.String())
	assert.Equal(t, "Jump", treewalk.Jump.String())
	assert.Equal(t, "Stop", treewalk.Stop.String())
	assert.Equal(t, "Recursion(42)", treewalk.Recursion(42).String())
}
