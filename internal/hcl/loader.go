package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/autoreg/internal/config"
	"github.com/vk/autoreg/internal/ctxlog"
	"github.com/vk/autoreg/internal/fsutil"
	"github.com/vk/autoreg/internal/policy"
	"github.com/vk/autoreg/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths. Blocks keep file order, then
// declaration order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, path := range paths {
		files, err := fsutil.FindFiles(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, filePath := range files {
			logger.Debug("Parsing registration file.", "file", filePath)
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}
			blocks, err := decode(hclFile.Body, filePath)
			if err != nil {
				return nil, err
			}
			model.Blocks = append(model.Blocks, blocks...)
		}
	}

	logger.Debug("Registration configuration loaded.", "blocks", len(model.Blocks))
	return model, nil
}

// LoadBytes parses a single in-memory registration file.
func (l *Loader) LoadBytes(src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	blocks, err := decode(hclFile.Body, filename)
	if err != nil {
		return nil, err
	}
	return &config.Model{Blocks: blocks}, nil
}

func decode(body hcl.Body, filename string) ([]*config.Block, error) {
	var file schema.File
	if diags := gohcl.DecodeBody(body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	blocks := make([]*config.Block, 0, len(file.Registrations))
	for _, r := range file.Registrations {
		blocks = append(blocks, translateRegistration(r, filename))
	}
	return blocks, nil
}

// translateRegistration converts the HCL-specific schema into the agnostic model.
func translateRegistration(r *schema.Registration, filename string) *config.Block {
	mode := policy.DefaultMode()
	if d := r.Detection; d != nil {
		if d.PublicOnly != nil {
			mode.PublicOnly = *d.PublicOnly
		}
		if d.AnnotatedOnly != nil {
			mode.AnnotatedOnly = *d.AnnotatedOnly
		}
		if d.NamedOnly != nil {
			mode.NamedOnly = *d.NamedOnly
		}
	}
	return &config.Block{
		Namespace:  r.Namespace,
		Mode:       mode,
		Registrars: r.Registrars,
		Source:     filename,
	}
}
