package cmd

import (
	"context"
	"fmt"

	"github.com/gocart/cukesvc/internal/domain"
)

// SchemaCmd fetches and compiles schemas without starting anything
type SchemaCmd struct {
	Service  string   `arg:"" help:"Service (or harness) name"`
	Bindings []string `help:"Languages to compile into the shared schema directory (go, ruby)" short:"b"`
}

// Run executes the schema command
func (s *SchemaCmd) Run(cli *CLI) error {
	container, err := cli.container()
	if err != nil {
		return err
	}
	ctx := context.Background()
	layout := container.Layout

	// The harness has no checkout under the source root
	if s.Service != layout.HarnessName {
		svc, err := layout.Service(s.Service)
		if err != nil {
			return err
		}

		schemaDir := layout.SchemaDir(svc)
		if err := container.SchemaService.EnsureSchemaSource(ctx, svc.Dir(), schemaDir); err != nil {
			return err
		}
		pair := domain.NewSchemaArtifactPair(schemaDir, layout.SchemaBase, domain.LanguageGo)
		if err := container.SchemaService.EnsureTargetBinding(ctx, svc.Dir(), pair); err != nil {
			return err
		}
		fmt.Println(pair.Generated)
	}

	for _, b := range s.Bindings {
		lang, err := domain.ParseLanguage(b)
		if err != nil {
			return err
		}
		path, err := container.SchemaService.CompileBinding(ctx, s.Service, lang)
		if err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}
