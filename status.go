package shard

import "fmt"

// StatusProvider renders the shard's listing line for status queries.
type StatusProvider struct {
	name string
}

func NewStatusProvider(name string) *StatusProvider {
	return &StatusProvider{name: name}
}

func (s *StatusProvider) Status(playerCount int, maxPlayers int) string {
	return fmt.Sprintf("%s (%d/%d)", s.name, playerCount, maxPlayers)
}
