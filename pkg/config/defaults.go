package config

// DefaultGameConfig 返回内置默认数值
//
// 与 data/game.yaml 保持一致，配置文件缺失字段时以此兜底。
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Gravity:          0.3,
			CameraOffset:     0.10,
			PlatformHeight:   20,
			ContactEpsilon:   2,
			LineOfSightSteps: 50,
			MaxFrameMs:       100,
		},
		Score: ScoreConfig{
			KillReward: 10,
			HitPenalty: 5,
		},
		Player: PlayerConfig{
			SpawnX:     700,
			SpawnY:     300,
			Width:      50,
			Height:     150,
			MaxHealth:  100,
			Speed:      5,
			JumpHeight: 10,
			Jetpack: JetpackConfig{
				MaxFuel:      100,
				Thrust:       4,
				BurnPerTick:  1,
				RegenPerTick: 0.5,
			},
		},
		Zombies: map[string]ZombieStats{
			"normal": {
				Width:           50,
				Height:          150,
				MaxHealth:       50,
				Speed:           2,
				JumpHeight:      5,
				MeleeDamage:     10,
				MeleeReach:      20,
				MeleeCooldownMs: 700,
			},
			"jumper": {
				Width:           50,
				Height:          150,
				MaxHealth:       40,
				Speed:           2.5,
				JumpHeight:      8,
				MeleeDamage:     10,
				MeleeReach:      20,
				MeleeCooldownMs: 700,
			},
		},
		Block: BlockConfig{
			Width:     70,
			Height:    70,
			MaxHealth: 100,
		},
		InitialBlocks: []BlockSpawn{
			{X: 300},
			{X: 800},
		},
		InitialZombies: []ZombieSpawn{
			{Kind: "normal", X: 200, Y: 350},
		},
		Guns: []GunConfig{
			{Name: "pistol", Damage: 25, BulletSpeed: 20, BulletSize: 10, CooldownMs: 250},
			{Name: "rifle", Damage: 15, BulletSpeed: 25, BulletSize: 8, CooldownMs: 100},
		},
		Placeables: PlaceablesConfig{
			Block: PlaceableStats{Count: 5, Width: 70, Height: 70},
			Shooter: PlaceableStats{
				Count:  2,
				Width:  40,
				Height: 40,
				Gun: &GunConfig{
					Name:        "turret",
					Damage:      10,
					BulletSpeed: 15,
					BulletSize:  8,
					CooldownMs:  600,
					Range:       600,
				},
			},
			Mine: PlaceableStats{
				Count:        3,
				Width:        40,
				Height:       10,
				Damage:       100,
				CooldownMs:   300,
				EffectRadius: 60,
			},
			FreezeTrap: PlaceableStats{
				Count:        2,
				Width:        40,
				Height:       10,
				CooldownMs:   3000,
				EffectRadius: 80,
			},
		},
		PowerUps: PowerUpsConfig{
			Width:            30,
			Height:           30,
			GroundLifetimeMs: 15000,
			RangeMultiplier:  1.5,
			Immunity:         PowerUpStats{DurationMs: 5000},
			IncreasedRange:   PowerUpStats{DurationMs: 8000},
		},
		Spawner: SpawnerConfig{
			FirstHordeDelayMs: 5000,
			HordeIntervalMs:   15000,
			BaseHordeSize:     2,
			HordeGrowth:       1,
			MaxHordeSize:      8,
			JumperChance:      0.3,
			SpawnPoints:       []float64{-200, 1500},
			SpawnY:            350,
			PowerUpIntervalMs: 20000,
			PowerUpSpawnY:     100,
		},
	}
}
