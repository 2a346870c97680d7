package gen

import "github.com/iancoleman/strcase"

// exportedFieldName maps an IDL field/member name (conventionally
// lower_snake_case or lowerCamelCase) to the exported Go identifier used for
// the corresponding struct field, builder setter, and enum constant.
// Grounded in the swagger2idl example's own IDL-to-Go identifier
// conversion, which reaches for the same library.
func exportedFieldName(name string) string {
	if name == "" {
		return name
	}
	return strcase.ToCamel(name)
}

// unexportedName lower-cases the first rune of an exported identifier, for
// builder-local temporaries derived from a field name.
func unexportedName(name string) string {
	if name == "" {
		return name
	}
	return strcase.ToLowerCamel(name)
}

// fileName maps an entity's declared name to the snake_case base file name
// its compilation unit is written under (e.g. "UserAccount" -> "user_account").
func fileName(name string) string {
	return strcase.ToSnake(name)
}
