package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativizer(t *testing.T) {
	rel := newRelativizer([]string{"tests/", "/project/tests/"})

	assert.Equal(t, "unit/UserTest.php", rel.relative("tests/unit/UserTest.php"))
	assert.Equal(t, "unit/UserTest.php", rel.relative("/project/tests/unit/UserTest.php"))
	assert.Equal(t, "/other/UserTest.php", rel.relative("/other/UserTest.php"))
	assert.Equal(t, "/other/UserTest.php", rel.relative("/other/UserTest.php"))
	// The prefix alone is not a file
	assert.Equal(t, "tests/", rel.relative("tests/"))

	assert.Equal(t, []string{"/other/UserTest.php", "tests/"}, rel.unresolved)
}

func TestParentPath(t *testing.T) {
	assert.Equal(t, "unit/billing/", parentPath("unit/billing/PaymentTest.php"))
	assert.Equal(t, "", parentPath("RootTest.php"))
	assert.Equal(t, "/", parentPath("/RootTest.php"))
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "testLogin", firstToken("testLogin with data set #0"))
	assert.Equal(t, "testLogin", firstToken("  testLogin\t| admin"))
	assert.Equal(t, "", firstToken("   "))
}
