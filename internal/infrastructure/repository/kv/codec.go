package kv

import (
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/turma-roster/internal/domain/player"
)

// playerRecord is the stored shape of a player: {"name": ..., "team": ...}.
type playerRecord struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

func decodeGroups(raw string) ([]string, error) {
	var groups []string
	if err := sonic.UnmarshalString(raw, &groups); err != nil {
		return nil, crerr.Wrap(err, "decode group collection")
	}
	if groups == nil {
		groups = []string{}
	}
	return groups, nil
}

func encodeGroups(groups []string) (string, error) {
	if groups == nil {
		groups = []string{}
	}
	out, err := sonic.MarshalString(groups)
	if err != nil {
		return "", crerr.Wrap(err, "encode group collection")
	}
	return out, nil
}

func decodePlayers(raw string) ([]player.Player, error) {
	var records []playerRecord
	if err := sonic.UnmarshalString(raw, &records); err != nil {
		return nil, crerr.Wrap(err, "decode player collection")
	}

	out := make([]player.Player, 0, len(records))
	for _, r := range records {
		out = append(out, player.Player{Name: r.Name, Team: player.Team(r.Team)})
	}
	return out, nil
}

func encodePlayers(players []player.Player) (string, error) {
	records := make([]playerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, playerRecord{Name: p.Name, Team: string(p.Team)})
	}

	out, err := sonic.MarshalString(records)
	if err != nil {
		return "", crerr.Wrap(err, "encode player collection")
	}
	return out, nil
}
