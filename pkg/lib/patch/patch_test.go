package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Column(t *testing.T) {
	updates := map[string]interface{}{}

	Field[string]{}.Column(updates, "absent")
	Null[string]().Column(updates, "cleared")
	Of("x").Column(updates, "set")

	assert.NotContains(t, updates, "absent")
	assert.Contains(t, updates, "cleared")
	assert.Nil(t, updates["cleared"])
	assert.Equal(t, "x", updates["set"])
}

func TestField_Ptr(t *testing.T) {
	assert.Nil(t, Field[int]{}.Ptr())
	assert.Nil(t, Null[int]().Ptr())

	p := Of(5).Ptr()
	if assert.NotNil(t, p) {
		assert.Equal(t, 5, *p)
	}
}

func TestField_Apply(t *testing.T) {
	v := 1
	dst := &v

	Field[int]{}.Apply(&dst)
	assert.Equal(t, 1, *dst)

	Of(2).Apply(&dst)
	assert.Equal(t, 2, *dst)

	Null[int]().Apply(&dst)
	assert.Nil(t, dst)
}
