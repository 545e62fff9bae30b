package util

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Opts struct {
	// Addr is the address to listen on.
	Addr string `yaml:"addr"`
	// Name is the shard name reported to status queries.
	Name string `yaml:"name"`
	// MaxPlayers is the population cap reported to status queries.
	MaxPlayers int `yaml:"max_players"`
	// CancelMenusOnClose controls whether menus still awaiting a reply when
	// a session closes receive their cancel callback before being dropped.
	// When false they are dropped silently.
	CancelMenusOnClose bool `yaml:"cancel_menus_on_close"`
}

func DefaultOpts() *Opts {
	return &Opts{
		Addr:               ":2593",
		Name:               "Emberhold",
		MaxPlayers:         1000,
		CancelMenusOnClose: true,
	}
}

// LoadOpts reads opts from a YAML file at path, with defaults applied for
// fields the file leaves unset.
func LoadOpts(path string) (*Opts, error) {
	opts := DefaultOpts()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}
