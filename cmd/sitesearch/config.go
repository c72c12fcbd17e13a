package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitesearch"
	"gopkg.in/yaml.v3"
)

// configKeys are the settings a YAML config file may carry. Keys mirror
// flag names with dashes replaced by underscores.
var configKeys = map[string]struct{}{
	"stopwords":       {},
	"stopwords_extra": {},
	"stem":            {},
	"language":        {},
	"match":           {},
	"rank":            {},
	"link_bonus":      {},
	"concurrency":     {},
	"rate":            {},
	"extractor":       {},
}

// yamlConfig loads flag values from a YAML config file. Flags set on the
// command line are never overridden.
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid config file: %v", err)
		}
	}
	for key := range values {
		if _, ok := configKeys[key]; !ok {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "unknown config key %q", key)
		}
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		name := strings.ReplaceAll(flag.Name, "-", "_")
		raw, ok := values[name]
		if !ok {
			return nil, nil
		}
		// YAML lists arrive as []any; flatten for slice flags.
		if list, ok := raw.([]any); ok {
			words := make([]string, 0, len(list))
			for _, item := range list {
				words = append(words, fmt.Sprintf("%v", item))
			}
			return words, nil
		}
		return raw, nil
	}
	return f, nil
}
