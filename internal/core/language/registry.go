// Package language maps the UI language names offered to visitors onto the
// locale codes the translation and speech provider understands.
package language

// Default is the pivot language and the fallback for anything unknown.
const Default = "en-IN"

// Auto asks the translation client to detect the source language.
const Auto = "auto"

type entry struct {
	name string
	code string
}

var table = []entry{
	{"English", "en-IN"},
	{"Bengali", "bn-IN"},
	{"Hindi", "hi-IN"},
	{"Tamil", "ta-IN"},
	{"Telugu", "te-IN"},
	{"Malayalam", "ml-IN"},
	{"Marathi", "mr-IN"},
	{"Gujarati", "gu-IN"},
	{"Kannada", "kn-IN"},
	{"Punjabi", "pa-IN"},
}

var (
	byName = make(map[string]string, len(table))
	byCode = make(map[string]string, len(table))
)

func init() {
	for _, e := range table {
		byName[e.name] = e.code
		byCode[e.code] = e.name
	}
}

// Code resolves a UI language name. Unknown names resolve to Default.
func Code(name string) string {
	if c, ok := byName[name]; ok {
		return c
	}
	return Default
}

// Resolve accepts either a UI name or a supported code and returns the code.
func Resolve(nameOrCode string) string {
	if IsSupportedCode(nameOrCode) {
		return nameOrCode
	}
	return Code(nameOrCode)
}

func IsSupportedCode(code string) bool {
	_, ok := byCode[code]
	return ok
}

// Name returns the UI name for a code, or "" if the code is not supported.
func Name(code string) string { return byCode[code] }

// Names lists the UI languages in display order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}
