package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Nil().Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Number(0).Truthy())
	assert.True(t, Number(1).Truthy())
	assert.True(t, String("").Truthy())
	assert.True(t, FunVal(&Function{Name: "f"}).Truthy())
}

func TestEqual(t *testing.T) {
	assert.True(t, Nil().Equal(Nil()))
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))

	// no cross-type equality
	assert.False(t, Number(0).Equal(Bool(false)))
	assert.False(t, Nil().Equal(Bool(false)))
	assert.False(t, Number(1).Equal(String("1")))

	// functions compare by identity
	f := &Function{Name: "f"}
	g := &Function{Name: "f"}
	assert.True(t, FunVal(f).Equal(FunVal(f)))
	assert.False(t, FunVal(f).Equal(FunVal(g)))
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Nil(), "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(1), "1"},
		{Number(2.5), "2.5"},
		{Number(-0.5), "-0.5"},
		{Number(1e21), "1e+21"},
		{String("hello"), "hello"},
		{String(""), ""},
		{FunVal(&Function{Name: "add"}), "<fn add>"},
		{FunVal(&Function{}), "<fn>"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.v.String())
	}
}
