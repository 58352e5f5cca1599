package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePaging(t *testing.T) {
	p := GeneratePaging(2, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 1, p.Prev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 3, p.Next)
}

func TestGeneratePagingSinglePage(t *testing.T) {
	p := GeneratePaging(1, 20, 5)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestGeneratePagingEmpty(t *testing.T) {
	p := GeneratePaging(1, 20, 0)
	assert.Zero(t, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}
