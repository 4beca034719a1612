package pathkit

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() {
		SetLogger(zerolog.Nop())
	})

	t.Run("annotates entries with the component", func(t *testing.T) {
		var buf bytes.Buffer
		SetLogger(zerolog.New(&buf))

		logger().Info().Msg("hello")

		out := buf.String()
		if !strings.Contains(out, `"component":"pathkit"`) {
			t.Errorf("expected component field, got %q", out)
		}
		if !strings.Contains(out, "hello") {
			t.Errorf("expected message, got %q", out)
		}
	})

	t.Run("safe to install while readers are running", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 1000; i++ {
				logger().Debug().Msg("tick")
			}
		}()

		for i := 0; i < 1000; i++ {
			SetLogger(zerolog.New(io.Discard))
		}
		<-done
	})
}
