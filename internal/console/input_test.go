package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		expected       mb.Coordinates
		expectedReason string
	}{
		{name: "one based to zero based", line: "1 1", expected: mb.NewCoordinates(0, 0)},
		{name: "extra whitespace", line: "  3\t6 ", expected: mb.NewCoordinates(2, 5)},
		{name: "out of range is not a format error", line: "9 0", expected: mb.NewCoordinates(8, -1)},
		{name: "single value", line: "3", expectedReason: "enter 2 coordinates"},
		{name: "three values", line: "1 2 3", expectedReason: "enter 2 coordinates"},
		{name: "empty line", line: "", expectedReason: "enter 2 coordinates"},
		{name: "letters", line: "a b", expectedReason: "enter numbers"},
		{name: "second not a number", line: "2 x", expectedReason: "enter numbers"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := ParseMove(test.line)
			if test.expectedReason == "" {
				require.NoError(t, err)
				assert.Equal(t, test.expected, c)
				return
			}

			var formatErr *cerr.InputFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, test.expectedReason, formatErr.Reason)
			assert.Equal(t, test.line, formatErr.Input)
		})
	}
}

func TestInputSourceReadsLines(t *testing.T) {
	var out bytes.Buffer
	source := NewInputSource(strings.NewReader("2 3\nfoo\n"), &out)

	c, err := source.NextTarget(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(1, 2), c)

	_, err = source.NextTarget(context.Background())
	var formatErr *cerr.InputFormatError
	assert.ErrorAs(t, err, &formatErr)

	_, err = source.NextTarget(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, 3, strings.Count(out.String(), prompt))
}

func TestInputSourceStopsWhenContextIsCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	source := NewInputSource(reader, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := source.NextTarget(ctx)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("expected NextTarget to return after cancel\tgot: still blocked")
	}

	// a line typed afterwards is still delivered to the next call
	go writer.Write([]byte("4 5\n"))
	c, err := source.NextTarget(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(3, 4), c)
}
