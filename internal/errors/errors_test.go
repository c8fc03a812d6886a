package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type segmentError struct {
	from, to int
}

func (e *segmentError) Error() string {
	return fmt.Sprintf("segment %d -> %d", e.from, e.to)
}

func TestWrap_PreservesSentinel(t *testing.T) {
	sentinel := New("no path found")

	err := Wrapf(Wrap(sentinel, "search"), "segment %d", 1)

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, "segment 1: search: no path found", err.Error())
}

func TestIsAny(t *testing.T) {
	notFound, noPath, canceled := New("not found"), New("no path"), New("canceled")

	err := Wrap(noPath, "stitch")

	assert.True(t, IsAny(err, notFound, noPath))
	assert.False(t, IsAny(err, notFound, canceled))
	assert.False(t, IsAny(err))
}

func TestAsType(t *testing.T) {
	err := Wrap(&segmentError{from: 1, to: 2}, "find path")

	segment, ok := AsType[*segmentError](err)
	assert.True(t, ok)
	assert.Equal(t, 2, segment.to)

	var target *segmentError
	assert.True(t, As(WithStack(segment), &target))

	_, ok = AsType[*segmentError](Errorf("plain %d", 1))
	assert.False(t, ok)
}
