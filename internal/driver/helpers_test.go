package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const accountSrc = `/**
 * @tsexport
 */
public class Account {
    @AuraEnabled
    public String name;
    @AuraEnabled
    public Integer age;

    @AuraEnabled(cacheable=true)
    public static Account getAccountById(Id accountId) {
        return null;
    }
}
`

const contactSrc = `/** @tsexport */
public class Contact {
    @AuraEnabled public Boolean active;
    public String internalNote;
}
`

const unmarkedSrc = `public class Helper {
    @AuraEnabled public String name;
}
`

const brokenSrc = `/** @tsexport */
public class Broken {
    @AuraEnabled public String name;
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}
