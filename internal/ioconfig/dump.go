package ioconfig

import (
	"io"

	"github.com/gnames/gnkin/pkg/config"
	"gopkg.in/yaml.v3"
)

// Dump writes the persistent part of cfg as YAML, in the layout of
// config.yaml. The database password is masked.
func Dump(w io.Writer, cfg *config.Config) error {
	out := config.New()
	out.Update(cfg.ToOptions())
	if out.Database.Password != "" {
		out.Database.Password = "********"
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
