package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 5, 0, 2)
	assert.Equal(t, int64(5), p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 2, p.Size)

	// content 永不为 null
	empty := NewPage[int](nil, 0, 0, 20)
	assert.NotNil(t, empty.Content)
	assert.Empty(t, empty.Content)
	assert.Equal(t, 0, empty.TotalPages)
}
