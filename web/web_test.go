package web_test

import (
	"io/fs"
	"testing"

	"hotel/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	static := web.Static()

	for _, name := range []string{"index.html", "script.js", "style.css"} {
		content, err := fs.ReadFile(static, name)

		require.NoError(t, err, name)
		assert.NotEmpty(t, content, name)
	}
}

func TestStatic_BookingReusesCustomerByEmail(t *testing.T) {
	script, err := fs.ReadFile(web.Static(), "script.js")
	require.NoError(t, err)

	assert.Contains(t, string(script), "/customers?limit=1&email=")
	assert.Contains(t, string(script), "findOrCreateCustomer(")
}
