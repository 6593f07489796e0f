package compiler

import (
	"strings"
	"text/template"
)

func jobForgeFuncMap() template.FuncMap {
	return map[string]any{
		"xmlEscape":  XMLEscape,
		"paramClass": ParamClass,
	}
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func XMLEscape(s string) string {
	return xmlReplacer.Replace(s)
}

var parameterClasses = map[string]string{
	"string":   "hudson.model.StringParameterDefinition",
	"text":     "hudson.model.TextParameterDefinition",
	"boolean":  "hudson.model.BooleanParameterDefinition",
	"password": "hudson.model.PasswordParameterDefinition",
}

// ParamClass maps a declared parameter type to its Jenkins parameter
// definition class, falling back to a plain string parameter.
func ParamClass(parameterType string) string {
	if class, ok := parameterClasses[parameterType]; ok {
		return class
	}
	return parameterClasses["string"]
}
