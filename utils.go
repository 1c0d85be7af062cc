package msql

import "unicode"

var (
	// DefaultColumnNamer is the column naming function used when Options
	// does not list columns explicitly. Default is ToUnderscore. Set to nil
	// to use key names as column names unchanged.
	DefaultColumnNamer func(string) string = ToUnderscore
)

// Convert "camelCase" or "CamelCase" word to its "snake_case" (underscore)
// form. For example, "createdAt" will be converted to "created_at".
func ToUnderscore(str string) string { // from govalidator
	var output []rune
	var segment []rune
	for _, r := range str {
		// not treat number as separate segment
		if !unicode.IsLower(r) && string(r) != "_" && !unicode.IsNumber(r) {
			output = addSegment(output, segment)
			segment = nil
		}
		segment = append(segment, unicode.ToLower(r))
	}
	output = addSegment(output, segment)
	return string(output)
}

func addSegment(inrune, segment []rune) []rune { // from govalidator
	if len(segment) == 0 {
		return inrune
	}
	if len(inrune) != 0 {
		inrune = append(inrune, '_')
	}
	inrune = append(inrune, segment...)
	return inrune
}
