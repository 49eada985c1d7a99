// validate_config 校验游戏数值配置文件
//
// 用法:
//
//	go run ./cmd/validate_config data/game.yaml [more.yaml ...]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/zshooter/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"data/game.yaml"}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			fmt.Printf("FAIL: %s - %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK: %s - guns=%d, zombie kinds=%d, initial blocks=%d, initial zombies=%d, spawn points=%d\n",
			path, len(cfg.Guns), len(cfg.Zombies), len(cfg.InitialBlocks), len(cfg.InitialZombies), len(cfg.Spawner.SpawnPoints))
	}

	if failed > 0 {
		fmt.Printf("%d of %d config files invalid\n", failed, len(paths))
		os.Exit(1)
	}
}
