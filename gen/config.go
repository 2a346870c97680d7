package gen

import (
	"os"
	"time"

	"github.com/dave/jennifer/jen"
	"gopkg.in/yaml.v3"
)

const defaultHeader = "Automatically generated by the Thrifty compiler; do not edit!"

// Config configures a single Generate invocation. Build one with NewConfig,
// which defaults to the Go slice/map-based container expressions, the
// standard header comment, and no output sink (callers must set one via
// WithOutputSink); a zero Config has nil container functions.
type Config struct {
	Header string

	// GeneratedAt, when non-empty, is the per-run date stamp embedded as a
	// "Generated: <stamp>" header line in every unit. It is captured once,
	// at configuration time, and never changes during a Generate pass, so
	// two runs differ at most on this one line.
	GeneratedAt string

	// ListType, SetType, MapType produce the concrete container-implementation
	// type expression used for allocation in constant initializers, builder
	// defaults, and the collections an Adapter's Read fills; struct and
	// builder field types do not use them. elem/key/val are the
	// already-resolved element type expressions. Defaults: []elem,
	// map[elem]struct{}, map[key]val.
	ListType func(elem jen.Code) jen.Code
	SetType  func(elem jen.Code) jen.Code
	MapType  func(key, val jen.Code) jen.Code

	Sink Sink
}

// Option configures a Config.
type Option func(*Config) error

// WithHeader overrides the file header comment emitted at the top of every
// generated compilation unit.
func WithHeader(header string) Option {
	return func(c *Config) error {
		if header == "" {
			return newConfigurationError("", "Header", "header cannot be empty")
		}
		c.Header = header
		return nil
	}
}

// WithGeneratedAt records the generation timestamp embedded in every unit's
// header. Omitting this option omits the line entirely, which keeps output
// byte-identical across runs without any stripping.
func WithGeneratedAt(t time.Time) Option {
	return func(c *Config) error {
		c.GeneratedAt = t.UTC().Format(time.RFC3339)
		return nil
	}
}

// WithListType sets the concrete list implementation used for allocation.
func WithListType(impl func(elem jen.Code) jen.Code) Option {
	return func(c *Config) error {
		if impl == nil {
			return newConfigurationError("", "ListType", "list implementation cannot be nil")
		}
		c.ListType = impl
		return nil
	}
}

// WithSetType sets the concrete set implementation used for allocation.
func WithSetType(impl func(elem jen.Code) jen.Code) Option {
	return func(c *Config) error {
		if impl == nil {
			return newConfigurationError("", "SetType", "set implementation cannot be nil")
		}
		c.SetType = impl
		return nil
	}
}

// WithMapType sets the concrete map implementation used for allocation.
func WithMapType(impl func(key, val jen.Code) jen.Code) Option {
	return func(c *Config) error {
		if impl == nil {
			return newConfigurationError("", "MapType", "map implementation cannot be nil")
		}
		c.MapType = impl
		return nil
	}
}

// WithOutputSink sets the sink every CompilationUnit is written to.
func WithOutputSink(sink Sink) Option {
	return func(c *Config) error {
		if sink == nil {
			return newConfigurationError("", "OutputSink", "output sink cannot be nil")
		}
		c.Sink = sink
		return nil
	}
}

// fileConfig is the YAML shape accepted by WithConfigFile. Container
// implementations named this way must resolve through namedListContainer,
// namedSetContainer or namedMapContainer.
type fileConfig struct {
	Header string `yaml:"header"`
	List   string `yaml:"listType"`
	Set    string `yaml:"setType"`
	Map    string `yaml:"mapType"`
}

// WithConfigFile loads Header/ListType/SetType/MapType from a YAML document,
// giving the configuration surface an external, non-Go-code entry point.
// Recognized list/set/map values are "slice"/"map" style names resolved by
// the named*Container helpers; an unrecognized name is a ConfigurationError.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return newConfigurationError(path, "ConfigFile", err.Error())
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return newConfigurationError(path, "ConfigFile", "invalid YAML: "+err.Error())
		}
		if fc.Header != "" {
			c.Header = fc.Header
		}
		if fc.List != "" {
			impl, err := namedListContainer(fc.List)
			if err != nil {
				return newConfigurationError(path, "listType", err.Error())
			}
			c.ListType = impl
		}
		if fc.Set != "" {
			impl, err := namedSetContainer(fc.Set)
			if err != nil {
				return newConfigurationError(path, "setType", err.Error())
			}
			c.SetType = impl
		}
		if fc.Map != "" {
			impl, err := namedMapContainer(fc.Map)
			if err != nil {
				return newConfigurationError(path, "mapType", err.Error())
			}
			c.MapType = impl
		}
		return nil
	}
}

func namedListContainer(name string) (func(jen.Code) jen.Code, error) {
	switch name {
	case "slice", "":
		return func(elem jen.Code) jen.Code { return jen.Index().Add(elem) }, nil
	default:
		return nil, newInternalInvariantError("unknown list container: " + name)
	}
}

func namedSetContainer(name string) (func(jen.Code) jen.Code, error) {
	switch name {
	case "map", "":
		return func(elem jen.Code) jen.Code { return jen.Map(elem).Struct() }, nil
	default:
		return nil, newInternalInvariantError("unknown set container: " + name)
	}
}

func namedMapContainer(name string) (func(key, val jen.Code) jen.Code, error) {
	switch name {
	case "map", "":
		return func(key, val jen.Code) jen.Code { return jen.Map(key).Add(val) }, nil
	default:
		return nil, newInternalInvariantError("unknown map container: " + name)
	}
}

// NewConfig builds a Config from options, applying defaults for anything
// left unset.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Header: defaultHeader}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.ListType == nil {
		c.ListType = func(elem jen.Code) jen.Code { return jen.Index().Add(elem) }
	}
	if c.SetType == nil {
		c.SetType = func(elem jen.Code) jen.Code { return jen.Map(elem).Struct() }
	}
	if c.MapType == nil {
		c.MapType = func(key, val jen.Code) jen.Code { return jen.Map(key).Add(val) }
	}
	return c, nil
}
