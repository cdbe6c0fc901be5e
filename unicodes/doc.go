// Package unicodes provides constants for defining sets of allowed Unicode characters.
// These constants are used to define character ranges that are allowed in certain contexts,
// such as user input, document processing, or any system where specific Unicode character sets
// are permitted or restricted.
//
// The constants in this package are autogenerated and contain large ranges of Unicode characters
// that are deemed valid in specific situations. This helps in validating input and ensuring that
// only certain characters are processed.
package unicodes
