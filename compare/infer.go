package compare

import (
	"regexp"
	"strings"
)

// Type tags returned by [InferType].
const (
	TypeEmpty      = "empty"
	TypeBoolean    = "boolean"
	TypeInteger    = "integer"
	TypeNumber     = "number"
	TypeURL        = "url"
	TypeEmail      = "email"
	TypeIPAddress  = "ip address"
	TypeConnection = "connection string"
	TypeString     = "string"
)

//nolint:gochecknoglobals
var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	numberPattern  = regexp.MustCompile(`^-?\d+\.\d+$`)
	urlPattern     = regexp.MustCompile(`^https?://`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	ipPattern      = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
)

// typeRule pairs a predicate with the tag it produces.
type typeRule struct {
	tag   string
	match func(string) bool
}

// typeRules is evaluated top to bottom until the first match. Ordering
// matters: several patterns can match the same string ("0" is an integer
// before it is a number, "192.168.1.1" is an ip address before the
// connection-string rule gets a chance).
//
//nolint:gochecknoglobals
var typeRules = []typeRule{
	{TypeEmpty, func(v string) bool { return v == "" }},
	{TypeBoolean, func(v string) bool { return v == "true" || v == "false" }},
	{TypeInteger, integerPattern.MatchString},
	{TypeNumber, numberPattern.MatchString},
	{TypeURL, urlPattern.MatchString},
	{TypeEmail, emailPattern.MatchString},
	{TypeIPAddress, ipPattern.MatchString},
	{TypeConnection, func(v string) bool {
		return strings.Contains(v, ":") && strings.Contains(v, "//")
	}},
}

// InferType returns the type tag of the first matching rule, or [TypeString]
// when nothing else matches.
func InferType(value string) string {
	for _, rule := range typeRules {
		if rule.match(value) {
			return rule.tag
		}
	}

	return TypeString
}
