package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/thriftygen/thriftygen/schema"
)

// CompilationUnit is one rendered output file: the Go package it belongs
// to, its file name within that package, and the rendered source bytes.
type CompilationUnit struct {
	Package string
	File    string
	Content []byte
}

// Generator walks a resolved schema.Schema and renders it as Go source,
// one CompilationUnit (one jen.File) per enum, per struct/exception/union,
// and one per output package for that package's constants. Units render
// independently of one another, so wall-clock time tracks the slowest
// single unit rather than the sum of all of them.
type Generator struct {
	cfg      *Config
	resolver *TypeResolver
	writer   *WriterEmitter
	reader   *ReaderEmitter
	structs  *StructEmitter
	enums    *EnumEmitter
	consts   *ConstantsEmitter
}

// NewGenerator wires together every emitter from cfg, binding a single
// ConstRenderer (seeded with sch, for enum-member default/const lookups)
// across both the ConstantsEmitter and the StructEmitter's Reset defaults.
func NewGenerator(cfg *Config, sch *schema.Schema) *Generator {
	resolver := NewTypeResolver(cfg)
	writer := NewWriterEmitter(resolver)
	reader := NewReaderEmitter(resolver)
	renderer := NewConstRenderer(resolver, sch)
	structs := NewStructEmitter(resolver, writer, reader).WithDefaultsRenderer(renderer)

	return &Generator{
		cfg:      cfg,
		resolver: resolver,
		writer:   writer,
		reader:   reader,
		structs:  structs,
		enums:    NewEnumEmitter(),
		consts:   NewConstantsEmitter(resolver, renderer),
	}
}

// Generate renders every declaration in sch and writes the result to the
// Generator's configured Sink. Rendering runs in parallel across units,
// bounded by ctx: cancelling ctx stops scheduling new units and Generate
// returns ctx.Err() once in-flight units finish. The Sink only ever sees
// units sequentially, in the fixed schema order — enums, then structs,
// then exceptions, then unions, then one unit per constants package — so
// output is byte-identical across runs regardless of how rendering
// goroutines interleave. The first rendering error or Sink failure aborts
// the pass; units already handed to the Sink are not rolled back.
func (g *Generator) Generate(ctx context.Context, sch *schema.Schema) error {
	if err := g.validatePackages(sch); err != nil {
		return err
	}

	type job func(context.Context) (CompilationUnit, error)
	var jobs []job
	for _, et := range sch.Enums {
		et := et
		jobs = append(jobs, func(ctx context.Context) (CompilationUnit, error) { return g.renderEnum(ctx, et) })
	}
	for _, st := range allStructs(sch) {
		st := st
		jobs = append(jobs, func(ctx context.Context) (CompilationUnit, error) { return g.renderStruct(ctx, st) })
	}
	// TODO: Services
	for _, group := range sch.ConstantsByNamespace() {
		group := group
		jobs = append(jobs, func(ctx context.Context) (CompilationUnit, error) { return g.renderConstants(ctx, group) })
	}

	units := make([]CompilationUnit, len(jobs))
	grp, ctx := errgroup.WithContext(ctx)
	for i, render := range jobs {
		i, render := i, render
		grp.Go(func() error {
			unit, err := render(ctx)
			if err != nil {
				return err
			}
			units[i] = unit
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for _, unit := range units {
		if err := g.cfg.Sink.Write(unit.Package, unit.File, unit.Content); err != nil {
			if !errors.Is(err, ErrIOFailure) {
				err = newIOFailureError(unit.Package+"/"+unit.File, err)
			}
			return err
		}
	}
	return nil
}

// validatePackages enforces invariant 1: every entity must declare a
// non-empty output package before any unit is rendered, let alone written
// to the Sink. Checking this up front means a schema that fails validation
// never produces a partial write to the Sink.
func (g *Generator) validatePackages(sch *schema.Schema) error {
	for _, et := range sch.Enums {
		if et.Namespace == "" {
			return newConfigurationError(et.Name, "Namespace", "enum has no output package")
		}
	}
	for _, st := range allStructs(sch) {
		if st.Namespace == "" {
			return newConfigurationError(st.Name, "Namespace", "struct has no output package")
		}
	}
	for _, c := range sch.Constants {
		if c.Namespace == "" {
			return newConfigurationError(c.Name, "Namespace", "constant has no output package")
		}
	}
	return nil
}

// allStructs returns every struct-shaped declaration in emission order:
// plain structs, then exceptions, then unions.
func allStructs(sch *schema.Schema) []*schema.StructType {
	all := make([]*schema.StructType, 0, len(sch.Structs)+len(sch.Exceptions)+len(sch.Unions))
	all = append(all, sch.Structs...)
	all = append(all, sch.Exceptions...)
	all = append(all, sch.Unions...)
	return all
}

func (g *Generator) renderEnum(ctx context.Context, et *schema.EnumType) (CompilationUnit, error) {
	if err := ctx.Err(); err != nil {
		return CompilationUnit{}, err
	}
	f := g.newFile(et.Namespace, et.Location)
	g.enums.Emit(f, et)
	return g.render(et.Namespace, et.Name, f)
}

func (g *Generator) renderStruct(ctx context.Context, st *schema.StructType) (CompilationUnit, error) {
	if err := ctx.Err(); err != nil {
		return CompilationUnit{}, err
	}
	f := g.newFile(st.Namespace, st.Location)
	if err := g.structs.Emit(f, st, st.Namespace); err != nil {
		return CompilationUnit{}, err
	}
	return g.render(st.Namespace, st.Name, f)
}

func (g *Generator) renderConstants(ctx context.Context, group schema.ConstantGroup) (CompilationUnit, error) {
	if err := ctx.Err(); err != nil {
		return CompilationUnit{}, err
	}
	f := g.newFile(group.Namespace, schema.Location{})
	if err := g.consts.Emit(f, group); err != nil {
		return CompilationUnit{}, err
	}
	return g.render(group.Namespace, "constants", f)
}

// newFile builds the jen.File for a single compilation unit, carrying the
// configured header, a "Source: <location>" comment tracing the generated
// file back to the IDL declaration it came from, and the per-run date
// stamp when one was configured.
func (g *Generator) newFile(pkg string, loc schema.Location) *jen.File {
	f := jen.NewFilePath(pkg)
	f.HeaderComment(g.cfg.Header)
	if src := loc.String(); src != "" {
		f.HeaderComment("Source: " + src)
	}
	if g.cfg.GeneratedAt != "" {
		f.HeaderComment("Generated: " + g.cfg.GeneratedAt)
	}
	return f
}

func (g *Generator) render(pkg, name string, f *jen.File) (CompilationUnit, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return CompilationUnit{}, newInternalInvariantError(fmt.Sprintf("rendering %s/%s: %s", pkg, name, err))
	}
	return CompilationUnit{Package: pkg, File: fileName(name) + ".go", Content: buf.Bytes()}, nil
}
