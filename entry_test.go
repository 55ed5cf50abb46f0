package ldif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAddPreservesOrder(t *testing.T) {
	e := NewEntry()
	e.Add("objectClass", TextValue("top"))
	e.Add("cn", TextValue("a"))
	e.Add("objectClass", TextValue("person"))
	e.Add("mail", TextValue("a@b.com"))

	assert.Equal(t, []string{"objectClass", "cn", "mail"}, e.Names())
	assert.Equal(t, 3, e.Len())

	values := e.Get("objectClass")
	require.Len(t, values, 2)
	assert.Equal(t, "top", values[0].String())
	assert.Equal(t, "person", values[1].String())
}

func TestEntryNamesCaseSensitive(t *testing.T) {
	e := NewEntry()
	e.Add("cn", TextValue("a"))
	e.Add("CN", TextValue("b"))

	// Names are case-preserved and compared exactly.
	assert.Equal(t, []string{"cn", "CN"}, e.Names())
	require.Len(t, e.Get("cn"), 1)
	require.Len(t, e.Get("CN"), 1)
}

func TestEntrySet(t *testing.T) {
	e := NewEntry()
	e.Add("cn", TextValue("a"))
	e.Add("mail", TextValue("a@b.com"))
	e.Set("cn", TextValue("b"), TextValue("c"))

	// Set replaces values but keeps the attribute's position.
	assert.Equal(t, []string{"cn", "mail"}, e.Names())
	values := e.Get("cn")
	require.Len(t, values, 2)
	assert.Equal(t, "b", values[0].String())
}

func TestEntryFirst(t *testing.T) {
	e := NewEntry()
	e.Add("cn", TextValue("a"), TextValue("b"))

	v, ok := e.First("cn")
	require.True(t, ok)
	assert.Equal(t, "a", v.String())

	_, ok = e.First("missing")
	assert.False(t, ok)
}

func TestEntryDelete(t *testing.T) {
	e := NewEntry()
	e.Add("cn", TextValue("a"))
	e.Add("sn", TextValue("b"))
	e.Add("mail", TextValue("c"))

	e.Delete("sn")
	assert.Equal(t, []string{"cn", "mail"}, e.Names())
	assert.False(t, e.Has("sn"))

	// Deleting a missing attribute is a no-op.
	e.Delete("sn")
	assert.Equal(t, 2, e.Len())
}

func TestEntryClone(t *testing.T) {
	e := NewEntry()
	e.Add("cn", TextValue("a"))
	e.Add("data", BytesValue([]byte{1, 2, 3}))

	c := e.Clone()
	require.True(t, e.Equal(c))

	c.Add("cn", TextValue("b"))
	assert.Len(t, e.Get("cn"), 1)
	assert.Len(t, c.Get("cn"), 2)
}

func TestEntryEqual(t *testing.T) {
	build := func(names ...string) *Entry {
		e := NewEntry()
		for _, n := range names {
			e.Add(n, TextValue(n))
		}
		return e
	}

	assert.True(t, build("a", "b").Equal(build("a", "b")))
	// Attribute order matters.
	assert.False(t, build("a", "b").Equal(build("b", "a")))
	assert.False(t, build("a").Equal(build("a", "b")))

	a := NewEntry()
	a.Add("x", TextValue("v"))
	b := NewEntry()
	b.Add("x", BytesValue([]byte("v")))
	assert.False(t, a.Equal(b))

	assert.True(t, (*Entry)(nil).Equal(NewEntry()))
}
