package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "UserTest.php")
	phpContent := `<?php

class UserTest extends TestCase
{
    public function testCreateUser()
    {
        // test code
    }

    protected function test_update_user()
    {
    }

    /**
     * @test
     */
    public function itDeletesUsers()
    {
    }

    #[Test]
    public function itRestoresUsers(): void
    {
    }

    public function helperMethod()
    {
        // not a test
    }

    public function testCreateUser()
    {
    }
}
`
	require.NoError(t, os.WriteFile(testFile, []byte(phpContent), 0644))

	t.Run("finds test methods in declaration order", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		require.NoError(t, err)
		assert.Equal(t, []string{"testCreateUser", "test_update_user", "itDeletesUsers", "itRestoresUsers"}, testCases)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/file.php")
		assert.Error(t, err)
	})
}

func TestParser_Parse_Cest(t *testing.T) {
	source := `<?php
class LoginCest
{
    public function _before(AcceptanceTester $I)
    {
    }

    public function loginWorks(AcceptanceTester $I)
    {
    }

    protected function helper()
    {
    }

    public function logoutWorks(AcceptanceTester $I)
    {
    }
}
`
	assert.Equal(t, []string{"loginWorks", "logoutWorks"}, NewParser().Parse(source, true))
}
