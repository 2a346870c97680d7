// Package gen implements code generation from a resolved schema.Schema to
// Go source.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	schema.Schema (enums, structs, unions, exceptions, constants)
//	        ↓
//	   TypeResolver (ThriftType -> Go type expression)
//	        ↓
//	   per-kind emitters (EnumEmitter, StructEmitter, ConstantsEmitter)
//	        ↓
//	   jen.File compilation units, rendered concurrently
//	        ↓
//	   Sink (DirSink writes to disk, BufferSink accumulates in memory)
//
// # Key types
//
//   - Generator: orchestrates the whole pass over a Schema, via Generate.
//   - TypeResolver: resolves a ThriftType to the Go type used in a struct
//     field, builder field, or constant declaration, and to its on-wire
//     type code.
//   - StructEmitter: renders a struct/exception/union's value type,
//     Builder, and Adapter.
//   - WriterEmitter / ReaderEmitter: render a single Adapter's Write/Read
//     method bodies, dispatching on field type.
//   - EnumEmitter: renders an enum's backing type, member constants, and
//     FromCode lookup.
//   - ConstantsEmitter: renders one file per output package holding that
//     package's IDL constants.
//   - ConstRenderer: renders an IDL constant value as a Go expression or,
//     for collection-typed constants, as a sequence of init() statements.
//
// # Usage
//
//	cfg, err := gen.NewConfig(gen.WithOutputSink(gen.NewDirSink("./out")))
//	if err != nil {
//		return err
//	}
//	g := gen.NewGenerator(cfg, sch)
//	if err := g.Generate(ctx, sch); err != nil {
//		return err
//	}
//
// # Error handling
//
// Every exported entry point returns one of the typed errors declared in
// errors.go (ConfigurationError, SchemaViolationError,
// UnsupportedConstructError, InternalInvariantError, IOFailureError), each
// satisfying errors.Is against its corresponding sentinel. The one exception
// is Generate, which returns ctx.Err() unchanged when ctx is cancelled.
package gen
