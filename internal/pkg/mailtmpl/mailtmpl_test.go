//go:build unit

package mailtmpl_test

import (
	"testing"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/pkg/mailtmpl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r, err := mailtmpl.NewRenderer()
	require.NoError(t, err)

	t.Run("every email type renders", func(t *testing.T) {
		for _, et := range batchemail.EmailTypes() {
			out, err := r.Render(et, mailtmpl.Data{FirstName: "Ada"})
			require.NoError(t, err, et)
			assert.NotEmpty(t, out.Subject, et)
			assert.Contains(t, out.HTML, "Hi Ada,", et)
		}
	})

	t.Run("missing first name falls back to a generic greeting", func(t *testing.T) {
		out, err := r.Render(batchemail.EmailOrderReceived, mailtmpl.Data{})
		require.NoError(t, err)
		assert.Contains(t, out.HTML, "Hi there,")
	})

	t.Run("merge fields are escaped", func(t *testing.T) {
		out, err := r.Render(batchemail.EmailFollowUp, mailtmpl.Data{FirstName: "<script>"})
		require.NoError(t, err)
		assert.NotContains(t, out.HTML, "<script>")
		assert.Contains(t, out.HTML, "&lt;script&gt;")
	})

	t.Run("tracking number appears only when present", func(t *testing.T) {
		with, err := r.Render(batchemail.EmailShipped, mailtmpl.Data{TrackingNumber: "1Z999"})
		require.NoError(t, err)
		assert.Contains(t, with.HTML, "1Z999")

		without, err := r.Render(batchemail.EmailShipped, mailtmpl.Data{})
		require.NoError(t, err)
		assert.NotContains(t, without.HTML, "tracking number")
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := r.Render(batchemail.EmailType("bogus"), mailtmpl.Data{})
		assert.ErrorIs(t, err, mailtmpl.ErrUnknownTemplate)
	})
}
