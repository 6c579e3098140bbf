package binomial

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/contribsys/binheap/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type Order int

const (
	MaxFirst Order = iota
	MinFirst
)

func (o Order) String() string {
	if o == MinFirst {
		return "min"
	}
	return "max"
}

// ParseOrder accepts "max" or "min", case-insensitive. Blank means "max".
func ParseOrder(value string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "max":
		return MaxFirst, nil
	case "min":
		return MinFirst, nil
	default:
		return MaxFirst, errors.Wrapf(ErrUnknownOrder, "%q", value)
	}
}

/*
Config describes a queue in TOML:

	[queue]
	order = "min"

	[log]
	level = "debug"
*/
type Config struct {
	Queue QueueConfig `toml:"queue"`
	Log   LogConfig   `toml:"log"`
}

type QueueConfig struct {
	Order string `toml:"order"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func ParseConfig(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse queue config")
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to read queue config %s", path)
	}
	util.Debugf("binomial: loaded config from %s", path)
	return cfg, nil
}

func (c *Config) Order() (Order, error) {
	return ParseOrder(c.Queue.Order)
}

/*
Build an empty heap from "cfg". A non-blank log level is applied to the
process logger first.
*/
func NewFromConfig[T constraints.Ordered](cfg *Config) (*Heap[T], error) {
	if cfg.Log.Level != "" {
		if err := util.InitLogger(cfg.Log.Level); err != nil {
			return nil, err
		}
	}
	order, err := cfg.Order()
	if err != nil {
		return nil, err
	}
	util.Infof("binomial: new %s-first heap", order)
	return NewOrdered[T](order), nil
}
