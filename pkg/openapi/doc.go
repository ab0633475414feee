// Package openapi derives prompt definitions from OpenAPI documents.
//
// An operation's JSON request body maps naturally onto an input prompt:
// object properties become field descriptors, schema constraints become
// validation rules, and enums become select options. The package loads a
// document once and hands back loader.Definition values that plug straight
// into prompt.Service.Input.
package openapi
