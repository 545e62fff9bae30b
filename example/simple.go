package main

import (
	"log/slog"
	"os"

	"github.com/emberhold/shard"
	"github.com/emberhold/shard/menu"
	"github.com/emberhold/shard/util"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	opts := util.DefaultOpts()
	status := shard.NewStatusProvider(opts.Name)

	srv := shard.NewShard(logger, opts, nil)
	if err := srv.Listen(); err != nil {
		logger.Error("failed to listen on shard", "err", err)
		return
	}

	for {
		s, err := srv.Accept()
		if err != nil {
			logger.Error("failed to accept session", "err", err)
			continue
		}
		logger.Info("session joined", "status", status.Status(len(srv.Registry().GetSessions()), opts.MaxPlayers))

		weapons := menu.NewItemListMenu("Choose a weapon",
			menu.ItemEntry{Name: "Sword", VisualID: 100},
			menu.ItemEntry{Name: "Axe", VisualID: 101, Tint: 5},
		)
		weapons.Handler = func(index int) {
			logger.Info("weapon chosen", "id", s.ID(), "index", index)
		}
		weapons.CancelHandler = func() {
			logger.Info("menu dismissed", "id", s.ID())
		}
		if err := weapons.SendTo(s); err != nil {
			logger.Error("failed to send menu", "err", err)
		}
	}
}
