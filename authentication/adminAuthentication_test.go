package authentication

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticCredentials(t *testing.T) {
	creds := DefaultAdminCredentials()

	assert.True(t, creds.Check("admin", "admin123"))
	assert.False(t, creds.Check("admin", "wrong"))
	assert.False(t, creds.Check("root", "admin123"))
	assert.False(t, creds.Check("", ""))
	// Exact equality, no trimming or case folding.
	assert.False(t, creds.Check("Admin", "admin123"))
	assert.False(t, creds.Check("admin", "admin123 "))
}
