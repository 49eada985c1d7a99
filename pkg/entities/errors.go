package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScale 实体尺寸必须为正
	ErrInvalidScale = errors.New("entity scale must be positive")
	// ErrInvalidHealth 生命值必须为正
	ErrInvalidHealth = errors.New("entity health must be positive")
	// ErrNilEntityManager 实体管理器为空
	ErrNilEntityManager = errors.New("entity manager cannot be nil")
)

func validateScale(what string, w, h float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%s %vx%v: %w", what, w, h, ErrInvalidScale)
	}
	return nil
}

func validateHealth(what string, hp int) error {
	if hp <= 0 {
		return fmt.Errorf("%s health %d: %w", what, hp, ErrInvalidHealth)
	}
	return nil
}
