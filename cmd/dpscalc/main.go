// Package main evaluates a configured loadout against a target enemy and
// reports accuracy roll, max hit, defence roll, and expected DPS.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/runetools/dpscalc/internal/config"
	"github.com/runetools/dpscalc/internal/game/combat"
	"github.com/runetools/dpscalc/internal/game/stat"
	"github.com/runetools/dpscalc/internal/loader"
	"github.com/runetools/dpscalc/internal/observability"
)

func scalar(level int) stat.Scalar { return stat.Scalar(level) }

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	registry, err := loader.Load(cfg.Data.Dir)
	if err != nil {
		logger.Fatal("loading reference data", zap.Error(err))
	}
	logger.Debug("reference data loaded", zap.String("dir", cfg.Data.Dir))

	player, err := buildPlayer(registry, cfg.Loadout)
	if err != nil {
		logger.Fatal("building player", zap.Error(err))
	}

	enemy, err := registry.Enemy(cfg.Loadout.Enemy)
	if err != nil {
		logger.Fatal("resolving enemy", zap.Error(err))
	}

	accuracy, err := player.MaxAccuracyRoll(&enemy)
	if err != nil {
		logger.Fatal("computing accuracy roll", zap.Error(err))
	}
	maxHit, err := player.MaxHit(&enemy)
	if err != nil {
		logger.Fatal("computing max hit", zap.Error(err))
	}
	speed, err := player.AttackSpeed()
	if err != nil {
		logger.Fatal("computing attack speed", zap.Error(err))
	}
	dps, err := player.DPS(&enemy)
	if err != nil {
		logger.Fatal("computing dps", zap.Error(err))
	}

	logger.Info("loadout evaluated",
		zap.String("enemy", enemy.Name),
		zap.String("combat_option", player.CombatOption().Name),
		zap.Int("max_accuracy_roll", int(accuracy)),
		zap.Int("max_hit", int(maxHit)),
		zap.Int("attack_speed_ticks", int(speed)),
		zap.Float64("dps", dps),
	)
}

// buildPlayer resolves every name in the loadout against the registry and
// assembles the player.
func buildPlayer(registry *loader.Registry, loadout config.LoadoutConfig) (*combat.Player, error) {
	player := combat.NewPlayer().SetLevels(combat.Levels{
		Hitpoints: scalar(loadout.Levels.Hitpoints),
		Attack:    scalar(loadout.Levels.Attack),
		Strength:  scalar(loadout.Levels.Strength),
		Defence:   scalar(loadout.Levels.Defence),
		Ranged:    scalar(loadout.Levels.Ranged),
		Magic:     scalar(loadout.Levels.Magic),
		Prayer:    scalar(loadout.Levels.Prayer),
	})

	for _, name := range loadout.Equipment {
		slot, err := registry.Equipment(name)
		if err != nil {
			return nil, err
		}
		player.Equip(slot)
	}
	for _, name := range loadout.Prayers {
		p, err := registry.Prayer(name)
		if err != nil {
			return nil, err
		}
		player.ActivatePrayer(p)
	}
	if loadout.Spell != "" {
		s, err := registry.Spell(loadout.Spell)
		if err != nil {
			return nil, err
		}
		player.SelectSpell(s)
	}
	if err := player.ChangeCombatStyle(loadout.StyleIndex); err != nil {
		return nil, err
	}
	return player, nil
}
