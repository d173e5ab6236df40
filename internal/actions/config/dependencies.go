package config

import (
	"fmt"

	"github.com/footprint-tools/cmdcon/internal/config"
	"github.com/footprint-tools/cmdcon/internal/domain"
)

type Deps struct {
	Provider domain.ConfigProvider
	Printf   func(string, ...any) (int, error)
	Println  func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Provider: config.NewProvider(),
		Printf:   fmt.Printf,
		Println:  fmt.Println,
	}
}
