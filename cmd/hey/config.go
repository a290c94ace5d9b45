package main

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"
)

// flagConfig makes command line flags the global configuration.
type flagConfig struct {
	flags       *pflag.FlagSet
	interactive bool
}

var _ schuko.Configuration = (*flagConfig)(nil)

// configuration keys which differ from their flag names
var flagNames = map[string]string{
	"panic-on-parser-stuck": "panic-on-stuck",
}

func (c *flagConfig) lookup(key string) *pflag.Flag {
	if name, ok := flagNames[key]; ok {
		key = name
	}
	if c.flags == nil {
		return nil
	}
	return c.flags.Lookup(key)
}

func (c *flagConfig) InitDefaults() {}

func (c *flagConfig) IsSet(key string) bool {
	f := c.lookup(key)
	return f != nil && f.Changed
}

func (c *flagConfig) GetString(key string) string {
	if key == "tracing.adapter" {
		return "go"
	}
	if f := c.lookup(key); f != nil {
		return f.Value.String()
	}
	return ""
}

func (c *flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

func (c *flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

func (c *flagConfig) IsInteractive() bool {
	return c.interactive
}

// setup installs the configuration and Go-log tracing.
func setup(flags *pflag.FlagSet, interactive bool) *flagConfig {
	conf := &flagConfig{flags: flags, interactive: interactive}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("trace")))
	tracer().Debugf("trace level is %s", tracer().GetTraceLevel())
	return conf
}
