package anypath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/hhatto/fpath"
)

type stringer string

func (s stringer) String() string { return string(s) }

type fixedEnv struct{}

func (fixedEnv) LookupEnv(key string) (string, bool) {
	if key == "HOME" {
		return "/home/u", true
	}
	if key == "X" {
		return "ex", true
	}
	return "", false
}

func (fixedEnv) Getwd() (string, error) { return "/work/dir", nil }

func (fixedEnv) CurrentUserHome() (string, error) { return "/home/u", nil }

func (fixedEnv) UserHome(name string) (string, error) { return "", errors.New("no user db") }

func TestFromAny(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want Value
	}{
		{"a/b", Value{"a/b", Text}},
		{[]byte("a/b"), Value{"a/b", RawBytes}},
		{stringer("a/b"), Value{"a/b", Text}},
		{[]byte{0xff, '/'}, Value{"\xff/", RawBytes}},
	} {
		got, err := FromAny(tc.in)
		assert.NilError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []any{nil, 12, []string{"a"}, 'x'} {
		_, err := FromAny(bad)
		assert.ErrorIs(t, err, ErrType)
	}
}

func TestFlavor_preserved(t *testing.T) {
	out, err := Normpath([]byte("a//b/../c"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("a/c"), out)

	out, err = Normpath(stringer("a//b/../c"))
	assert.NilError(t, err)
	assert.Equal(t, "a/c", out)

	head, tail, err := Split([]byte("/x/y"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []any{[]byte("/x"), []byte("y")}, []any{head, tail})

	root, ext, err := Splitext("a/b.tar.gz")
	assert.NilError(t, err)
	if diff := cmp.Diff([]any{"a/b.tar", ".gz"}, []any{root, ext}); diff != "" {
		t.Errorf("Splitext mismatch (-want +got):\n%s", diff)
	}

	d, err := Dirname([]byte("/a/b"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("/a"), d)

	b, err := Basename("/a/b")
	assert.NilError(t, err)
	assert.Equal(t, "b", b)

	abs, err := IsAbs([]byte("/a"))
	assert.NilError(t, err)
	assert.Assert(t, abs)
}

func TestJoin(t *testing.T) {
	out, err := Join("a", "b", stringer("c"))
	assert.NilError(t, err)
	assert.Equal(t, "a/b/c", out)

	out, err = Join([]byte("a"), []byte("/b"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("/b"), out)

	out, err = Join([]byte("a"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("a"), out)

	_, err = Join("a", []byte("b"))
	assert.ErrorIs(t, err, ErrMixedFlavor)
	assert.ErrorIs(t, err, ErrType)

	_, err = Join("a", 1)
	assert.ErrorIs(t, err, ErrType)
	assert.Assert(t, !errors.Is(err, ErrMixedFlavor))
}

func TestCommon(t *testing.T) {
	out, err := Commonprefix([]byte("/usr/lib"), []byte("/usr/local"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("/usr/l"), out)

	out, err = Commonprefix()
	assert.NilError(t, err)
	assert.Equal(t, "", out)

	out, err = Commonpath([]byte("/usr/lib"), []byte("/usr/local"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("/usr"), out)

	out, err = Commonpath("a/b", stringer("a/c"))
	assert.NilError(t, err)
	assert.Equal(t, "a", out)

	_, err = Commonpath()
	assert.ErrorIs(t, err, fpath.ErrNoPath)

	_, err = Commonpath([]byte("/a"), []byte("a"))
	assert.ErrorIs(t, err, fpath.ErrMixAbsRel)

	_, err = Commonprefix("/a", []byte("/a"))
	assert.ErrorIs(t, err, ErrMixedFlavor)
}

func TestResolver(t *testing.T) {
	r := NewResolver(fpath.New(fpath.WithEnv(fixedEnv{})))

	out, err := r.Abspath([]byte("x/../y"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("/work/dir/y"), out)

	out, err = r.Relpath("/work/other", nil)
	assert.NilError(t, err)
	assert.Equal(t, "../other", out)

	out, err = r.Relpath([]byte("/a/b"), []byte("/a"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("b"), out)

	_, err = r.Relpath("/a/b", []byte("/a"))
	assert.ErrorIs(t, err, ErrMixedFlavor)

	_, err = r.Relpath([]byte(""), nil)
	assert.ErrorIs(t, err, fpath.ErrNoPath)

	out, err = r.Expanduser([]byte("~/f"))
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("/home/u/f"), out)

	out, err = r.Expandvars("$X/${X}/$NOPE")
	assert.NilError(t, err)
	assert.Equal(t, "ex/ex/$NOPE", out)

	_, err = r.Expandvars(3.5)
	assert.ErrorIs(t, err, ErrType)
}

func TestDefault(t *testing.T) {
	dir := t.TempDir()

	ok, err := Exists([]byte(dir))
	assert.NilError(t, err)
	assert.Assert(t, ok)

	ok, err = Islink(dir)
	assert.NilError(t, err)
	assert.Assert(t, !ok)

	ok, err = Lexists([]byte(dir))
	assert.NilError(t, err)
	assert.Assert(t, ok)

	ok, err = Isdir(dir)
	assert.NilError(t, err)
	assert.Assert(t, ok)

	ok, err = Isfile(dir)
	assert.NilError(t, err)
	assert.Assert(t, !ok)

	_, err = Realpath(42, false)
	assert.ErrorIs(t, err, ErrType)
}

func TestFlavor_String(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "raw bytes", RawBytes.String())
	assert.Equal(t, "Flavor(7)", Flavor(7).String())
}
