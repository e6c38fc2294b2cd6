package envutil

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()

	src := FromMap(map[string]string{"NAME": "orders", "EMPTY": ""})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		val, err := String(src, "NAME").Value()
		require.NoError(t, err)
		assert.Equal(t, "orders", val)
	})

	t.Run("empty is still present", func(t *testing.T) {
		t.Parallel()

		rdr := String(src, "EMPTY", Default("fallback"))
		assert.True(t, rdr.HasValue())
		assert.Empty(t, rdr.ValueOrElse("x"))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := String(src, "MISSING").Value()
		require.ErrorIs(t, err, ErrEnvVarMissing)
		assert.Equal(t, "MISSING=<not set>", String(src, "MISSING").String())
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		val, err := String(src, "MISSING", Default("dflt")).Value()
		require.NoError(t, err)
		assert.Equal(t, "dflt", val)
	})
}

func TestBool(t *testing.T) {
	t.Parallel()

	src := FromMap(map[string]string{"YES": "true", "NO": " 0 ", "BAD": "maybe"})

	assert.True(t, Bool(src, "YES").ValueOrElse(false))
	assert.False(t, Bool(src, "NO").ValueOrElse(true))
	assert.True(t, Bool(src, "MISSING", Default(true)).ValueOrElse(false))

	rdr := Bool(src, "BAD")
	assert.True(t, rdr.HasError())

	_, err := rdr.Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
}

func TestInt(t *testing.T) {
	t.Parallel()

	src := FromMap(map[string]string{"N": "42", "BAD": "four"})

	val, err := Int(src, "N").Value()
	require.NoError(t, err)
	assert.Equal(t, 42, val)

	_, err = Int(src, "BAD").Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	src := FromMap(map[string]string{"LEVEL": "debug", "BAD": "loud"})

	level, err := SlogLevel(src, "LEVEL").Value()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	assert.Equal(t, slog.LevelWarn, SlogLevel(src, "MISSING", Default(slog.LevelWarn)).ValueOrElse(slog.LevelInfo))

	_, err = SlogLevel(src, "BAD").Value()
	require.Error(t, err)
}

func TestList(t *testing.T) {
	t.Parallel()

	src := FromMap(map[string]string{"ITEMS": " 7, 15 ,,6 ", "NONE": ""})

	items, err := List(src, "ITEMS").Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "15", "6"}, items)

	none, err := List(src, "NONE").Value()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	errNegative := errors.New("negative") //nolint:err113
	positive := Validate(func(n int) error {
		if n < 0 {
			return errNegative
		}

		return nil
	})

	src := FromMap(map[string]string{"OK": "3", "NEG": "-3"})

	assert.Equal(t, 3, Int(src, "OK", positive).ValueOrElse(0))

	_, err := Int(src, "NEG", positive).Value()
	require.ErrorIs(t, err, errNegative)
	require.ErrorIs(t, err, ErrBadEnvVar)
}

func TestLayered(t *testing.T) {
	t.Parallel()

	first := FromMap(map[string]string{"A": "first"})
	second := FromMap(map[string]string{"A": "second", "B": "second"})
	src := Layered(nil, first, second)

	assert.Equal(t, "first", String(src, "A").ValueOrElse(""))
	assert.Equal(t, "second", String(src, "B").ValueOrElse(""))
	assert.False(t, String(src, "C").HasValue())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("AMP_CONTAINER_TEST_VALUE", "from-env")

	assert.Equal(t, "from-env", String(nil, "AMP_CONTAINER_TEST_VALUE").ValueOrElse(""))
	assert.Equal(t, "from-env", String(Environment, "AMP_CONTAINER_TEST_VALUE").ValueOrElse(""))
}

func TestFromMap_Copies(t *testing.T) {
	t.Parallel()

	m := map[string]string{"A": "1"}
	src := FromMap(m)
	m["A"] = "2"

	assert.Equal(t, "1", String(src, "A").ValueOrElse(""))
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		path := write("config.yaml", "env:\n  ORDERDEMO_ELEMENTS: \"3,1,2\"\n  LOG_LEVEL: debug\n")

		values, err := LoadEnvFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"ORDERDEMO_ELEMENTS": "3,1,2", "LOG_LEVEL": "debug"}, values)
	})

	t.Run("yml", func(t *testing.T) {
		t.Parallel()

		path := write("config.yml", "env:\n  A: b\n")

		src, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "b", String(src, "A").ValueOrElse(""))
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := write("config.json", `{"env": {"A": "json"}}`)

		values, err := LoadEnvFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"A": "json"}, values)
	})

	t.Run("no env section", func(t *testing.T) {
		t.Parallel()

		path := write("empty.yaml", "other: 1\n")

		values, err := LoadEnvFile(path)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("unknown suffix", func(t *testing.T) {
		t.Parallel()

		path := write("config.toml", "A = 1\n")

		_, err := LoadEnvFile(path)
		require.ErrorIs(t, err, ErrUnknownFileType)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		path := write("bad.json", `{"env": [}`)

		_, err := LoadEnvFile(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := FromFile(filepath.Join(dir, "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
