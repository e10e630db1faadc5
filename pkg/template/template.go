// Package template compiles dashboard templates into JSON documents.
//
// Templates are either plain JSON files or Jsonnet programs. Jsonnet
// templates are evaluated with google/go-jsonnet and may receive external
// variables (--ext-var) and additional library search paths (--jpath).
package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-jsonnet"

	"github.com/matzehuels/doghouse/pkg/errors"
)

// IsJsonnetFile reports whether path has a Jsonnet file extension
// (.jsonnet or .libsonnet). Everything else is treated as plain JSON.
func IsJsonnetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonnet", ".libsonnet":
		return true
	}
	return false
}

// Compile evaluates the Jsonnet template at path and returns the resulting
// JSON string. extVars are exposed via std.extVar; jpaths extend the
// library import search path.
func Compile(path string, extVars map[string]string, jpaths []string) (string, error) {
	if err := errors.ValidateTemplatePath(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.New(errors.ErrCodeFileNotFound, "template not found: %s", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read template %s", path)
	}

	vm := jsonnet.MakeVM()
	vm.Importer(&jsonnet.FileImporter{JPaths: jpaths})
	for k, v := range extVars {
		vm.ExtVar(k, v)
	}

	out, err := vm.EvaluateAnonymousSnippet(path, string(data))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidTemplate, err, "compile %s", path)
	}
	return out, nil
}

// Load reads the template at path and returns the dashboard document as a
// generic map. Jsonnet templates are compiled first; JSON files are parsed
// directly.
func Load(path string, extVars map[string]string, jpaths []string) (map[string]any, error) {
	var raw string

	if IsJsonnetFile(path) {
		out, err := Compile(path, extVars, jpaths)
		if err != nil {
			return nil, err
		}
		raw = out
	} else {
		if err := errors.ValidateTemplatePath(path); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "template not found: %s", path)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read template %s", path)
		}
		raw = string(data)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse template %s", path)
	}
	return doc, nil
}
