package testkit

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// CheckDeclarations parses a generated declaration file with the esbuild
// TypeScript parser and returns every syntax error it reports.
func CheckDeclarations(text string) error {
	res := api.Transform(text, api.TransformOptions{
		Loader:   api.LoaderTS,
		LogLevel: api.LogLevelSilent,
	})
	if len(res.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors))
	for _, m := range res.Errors {
		if m.Location != nil {
			msgs = append(msgs, fmt.Sprintf("%d:%d: %s (%q)", m.Location.Line, m.Location.Column, m.Text, m.Location.LineText))
			continue
		}
		msgs = append(msgs, m.Text)
	}
	return fmt.Errorf("invalid TypeScript:\n%s", strings.Join(msgs, "\n"))
}
