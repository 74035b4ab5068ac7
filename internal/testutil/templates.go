package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/communityhub/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates compiles every template set registered so far (the shared
// layout plus whatever feature packages the test binary imports) and
// installs the engine for templates.Render. Safe to call from every test.
func BootTemplates(t *testing.T) {
	t.Helper()
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if bootErr = eng.Boot(zap.NewNop()); bootErr != nil {
			return
		}
		templates.UseEngine(eng, zap.NewNop())
	})
	if bootErr != nil {
		t.Fatalf("boot templates: %v", bootErr)
	}
}
