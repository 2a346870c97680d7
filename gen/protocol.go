package gen

// Import paths shared by every emitter that generates calls against the
// Thrift protocol abstraction. Centralized here so every generated file
// references the same jen.Qual path literally, which is part of what keeps
// output byte-for-byte deterministic across runs (jennifer sorts and
// dedupes imports by qualified path).
const (
	thriftPkg   = "github.com/apache/thrift/lib/go/thrift"
	thriftrtPkg = "github.com/thriftygen/thriftygen/thriftrt"
)
